package e2e

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type message struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type testSubmitListSuite struct {
	BaseHttpSuite
}

func TestSubmitListSuite(t *testing.T) {
	suite.Run(t, &testSubmitListSuite{})
}

func (s *testSubmitListSuite) TestSubmitThenList() {
	text := "e2e " + uuid.NewString()
	var created message

	s.Run("Step 1: Submit a message", func() {
		status := s.Do("POST a new message", http.MethodPost, map[string]string{"msg": text}, &created)
		s.Require().Equal(http.StatusOK, status)
		s.Require().Equal(text, created.Message)
		_, err := uuid.Parse(created.ID)
		s.Require().NoError(err)
	})

	s.Run("Step 2: The message is listed", func() {
		var messages []message
		status := s.Do("GET all messages", http.MethodGet, nil, &messages)
		s.Require().Equal(http.StatusOK, status)
		s.Require().True(lo.Contains(messages, created), "submitted message missing from list")
	})
}

func (s *testSubmitListSuite) TestSubmitRejectsMissingText() {
	status := s.Do("POST without msg", http.MethodPost, map[string]any{"msg": nil}, nil)
	s.Require().Equal(http.StatusBadRequest, status)
}

func (s *testSubmitListSuite) TestHealthIsServing() {
	s.WithHealth("Check gRPC health", func(ctx context.Context, client healthpb.HealthClient) {
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{})
		s.Require().NoError(err)
		s.Require().Equal(healthpb.HealthCheckResponse_SERVING, resp.Status)
	})
}
