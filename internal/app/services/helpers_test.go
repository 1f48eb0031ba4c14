package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/studentlife/copilot/internal/ai"
	"github.com/studentlife/copilot/internal/app/models"
	"github.com/studentlife/copilot/internal/store"
)

var (
	nopLogger = zerolog.Nop()
	fixedTime = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
)

// stubClient scripts the gateway reply for a test.
type stubClient struct {
	reply string
	err   error
	calls int
}

func (c *stubClient) Generate(ctx context.Context, prompt string, format ai.Format) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	return c.reply, nil
}

// newTestStore builds a store with a fixed clock and sequential ids.
func newTestStore(data store.Data) *store.Store {
	n := 0
	return store.New(data,
		store.WithClock(func() time.Time { return fixedTime }),
		store.WithIDGenerator(func() string { n++; return fmt.Sprintf("id-%d", n) }),
	)
}

func testStudent(id, name string, gpa float64) models.Student {
	return models.Student{
		User:  models.User{ID: id, Name: name, Role: models.RoleStudent},
		Major: "Computer Science",
		GPA:   gpa,
	}
}
