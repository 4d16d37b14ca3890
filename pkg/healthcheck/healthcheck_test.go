package healthcheck

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type HealthCheckTestSuite struct {
	suite.Suite
}

func TestHealthCheckTestSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckTestSuite))
}

func (s *HealthCheckTestSuite) TestAllChecksHealthy() {
	hc := New("1.0.0", zap.NewNop())
	hc.SetCacheTTL(0)
	hc.Register("database", func(ctx context.Context) error { return nil })
	hc.Register("cache", func(ctx context.Context) error { return nil })

	response := hc.Check(context.Background())

	s.Equal(StatusHealthy, response.Status)
	s.Equal("1.0.0", response.Version)
	s.Len(response.Checks, 2)
	s.Equal("database", response.Checks[0].Name)
	s.Equal("cache", response.Checks[1].Name)
	s.NoError(hc.Ready(context.Background()))
}

func (s *HealthCheckTestSuite) TestFailingCheckMarksUnhealthy() {
	hc := New("1.0.0", zap.NewNop())
	hc.SetCacheTTL(0)
	hc.Register("database", func(ctx context.Context) error { return nil })
	hc.Register("cache", func(ctx context.Context) error {
		return errors.New("connection refused")
	})

	response := hc.Check(context.Background())

	s.Equal(StatusUnhealthy, response.Status)
	s.Equal(StatusHealthy, response.Checks[0].Status)
	s.Equal(StatusUnhealthy, response.Checks[1].Status)
	s.Equal("connection refused", response.Checks[1].Message)

	err := hc.Ready(context.Background())
	s.Error(err)
	s.Contains(err.Error(), "cache")
}

func (s *HealthCheckTestSuite) TestResponseCaching() {
	calls := 0
	hc := New("1.0.0", zap.NewNop())
	hc.SetCacheTTL(time.Minute)
	hc.Register("database", func(ctx context.Context) error {
		calls++
		return nil
	})

	hc.Check(context.Background())
	hc.Check(context.Background())
	hc.Check(context.Background())

	s.Equal(1, calls)
}

func (s *HealthCheckTestSuite) TestNoChecksIsHealthy() {
	hc := New("1.0.0", zap.NewNop())

	response := hc.Check(context.Background())

	s.Equal(StatusHealthy, response.Status)
	s.Empty(response.Checks)
}
