package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"

	"github.com/finance-tracker/ledger/internal/application/usecase/recurrence"
)

func registerLedgerSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the clock is set to "([^"]*)"$`, theClockIsSetTo)
	ctx.Step(`^the notifier sweeps$`, theNotifierSweeps)
	ctx.Step(`^(\d+) "([^"]*)" messages? should have been published$`, messagesShouldHaveBeenPublished)
	ctx.Step(`^the last "([^"]*)" message field "([^"]*)" should be "([^"]*)"$`, theLastMessageFieldShouldBe)
}

func theClockIsSetTo(ctx context.Context, value string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	at, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("clock value must be RFC3339: %w", err)
	}
	tc.clock.SetCurrentTime(at)
	return nil
}

func theNotifierSweeps(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	_, err := tc.injector.Sweep.Execute(ctx, recurrence.SweepInput{
		Now:       tc.clock.Now(),
		DedupeTTL: tc.cfg.Notifier.DedupeTTL,
	})
	return err
}

func messagesShouldHaveBeenPublished(ctx context.Context, count int, routingKey string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if got := len(tc.broker.Received(routingKey)); got != count {
		return fmt.Errorf("expected %d %q messages, got %d", count, routingKey, got)
	}
	return nil
}

func theLastMessageFieldShouldBe(ctx context.Context, routingKey, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	messages := tc.broker.Received(routingKey)
	if len(messages) == 0 {
		return fmt.Errorf("no %q messages published", routingKey)
	}
	value, ok := messages[len(messages)-1][field]
	if !ok {
		return fmt.Errorf("field %q missing from %q message", field, routingKey)
	}
	if actual := fmt.Sprintf("%v", value); actual != tc.expand(expected) {
		return fmt.Errorf("message field %q expected %q, got %q", field, expected, actual)
	}
	return nil
}
