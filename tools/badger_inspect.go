package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"tx-lab/contract"
	"tx-lab/domain"
	"tx-lab/infrastructure/storage"
	"tx-lab/repositories"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dbPath := flag.String("db", "./data/badger", "Path to badger DB")
	flag.Parse()
	return inspect(os.Stdout, *dbPath)
}

// inspect prints every stored message of the database at dbPath.
// Errors are returned so the deferred close always runs.
func inspect(w io.Writer, dbPath string) error {
	db, err := storage.OpenBadgerReadOnly(dbPath)
	if err != nil {
		return fmt.Errorf("error while opening Badger: %w", err)
	}
	defer db.Close()

	store := repositories.NewBadgerStore(db, logs.GetLoggerFromString("ERROR"))
	messages, err := repositories.Execute(context.Background(), store, contract.ReadOnly,
		func(tx contract.Tx) ([]domain.Message, error) {
			return tx.FindAll(context.Background())
		})
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Message"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, message := range messages {
		id, _ := message.ID()
		table.Append([]string{id.String(), message.Text()})
	}
	table.Render()

	summary := fmt.Sprintf("%d message(s) in %s", len(messages), dbPath)
	fmt.Fprintln(w, color.New(color.BgBlack, color.FgGreen).Render(summary))
	return nil
}
