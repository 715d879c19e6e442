package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/caarlos0/env/v11"
	ledgerv1 "github.com/iskorotkov/splitledger-backend/internal/api/ledger/v1"
	"github.com/iskorotkov/splitledger-backend/internal/middleware"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "error: load .env: %v\n", err)
		os.Exit(1)
	}

	config, err := env.ParseAs[Config]()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.LogLevel,
	})))

	if err := run(ctx, config); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type Config struct {
	LogLevel slog.Level `env:"LOG_LEVEL"`
	Addr     string     `env:"ADDR" envDefault:"http://localhost:8080"`

	Members []string `env:"MEMBERS" envSeparator:"," envDefault:"alice,bob,carol,dave"`

	ExpenseInterval time.Duration `env:"EXPENSE_INTERVAL" envDefault:"1s"`
	ExpenseCount    int           `env:"EXPENSE_COUNT" envDefault:"10"`
	ExpenseAmount   float64       `env:"EXPENSE_AMOUNT" envDefault:"50"`

	BalanceInterval time.Duration `env:"BALANCE_INTERVAL" envDefault:"5s"`

	SubscriptionAmount string `env:"SUBSCRIPTION_AMOUNT" envDefault:"12.00"`
}

func run(ctx context.Context, c Config) error {
	if len(c.Members) == 0 {
		return errors.New("no members configured")
	}

	client := ledgerv1.NewLedgerServiceClient(&http.Client{}, c.Addr,
		connect.WithInterceptors(middleware.LogRequests()),
	)

	group, err := client.CreateGroup(ctx, connect.NewRequest(&ledgerv1.CreateGroupRequest{
		Name:      "load-" + strconv.FormatInt(time.Now().Unix(), 10),
		MemberIds: c.Members,
	}))
	if err != nil {
		return fmt.Errorf("create group: %w", err)
	}

	groupID := group.Msg.GroupId
	slog.InfoContext(ctx, "created group", "group_id", groupID, "members", c.Members)

	sub, err := client.CreateSubscription(ctx, connect.NewRequest(&ledgerv1.CreateSubscriptionRequest{
		GroupId:      groupID,
		Name:         "daily coffee",
		PayerId:      c.Members[0],
		Amount:       &ledgerv1.Decimal{Value: c.SubscriptionAmount},
		BillingCycle: "daily",
		NextDueAt:    time.Now().UTC().Format(time.RFC3339),
	}))
	if err != nil {
		return fmt.Errorf("create subscription: %w", err)
	}

	slog.InfoContext(ctx, "created subscription", "subscription_id", sub.Msg.SubscriptionId)

	var wg sync.WaitGroup
	wg.Go(func() {
		recordExpenses(ctx, c, client, groupID)
	})
	wg.Go(func() {
		reportBalances(ctx, c, client, groupID)
	})

	wg.Wait()

	return nil
}

func recordExpenses(
	ctx context.Context,
	c Config,
	client ledgerv1.LedgerServiceClient,
	groupID string,
) {
	ticker := time.NewTicker(c.ExpenseInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			slog.InfoContext(ctx, "recording expenses")

			recorded := 0
			for i := range c.ExpenseCount {
				expense := randomExpense(c, groupID)

				if _, err := client.RecordExpense(ctx, connect.NewRequest(expense)); err != nil {
					slog.ErrorContext(ctx, "record expense", "error", err, "i", i, "expense", expense)
					continue
				}
				recorded++
			}

			slog.InfoContext(ctx, "recorded expenses", "count", recorded)
		}
	}
}

// randomExpense picks a payer and either splits the amount equally between
// all members or hands it to a random subset in whole cents.
func randomExpense(c Config, groupID string) *ledgerv1.RecordExpenseRequest {
	amount := decimal.NewFromFloat(1 + rand.ExpFloat64()*c.ExpenseAmount).Round(2)

	expense := &ledgerv1.RecordExpenseRequest{
		GroupId:     groupID,
		Description: "expense " + strconv.Itoa(rand.IntN(1000)),
		PayerId:     c.Members[rand.IntN(len(c.Members))],
		Amount:      &ledgerv1.Decimal{Value: amount.String()},
		SplitType:   "equal",
	}
	if rand.IntN(2) == 0 {
		return expense
	}

	expense.SplitType = "unequal"
	remaining := amount.Shift(2).IntPart()
	members := rand.Perm(len(c.Members))[:1+rand.IntN(len(c.Members))]
	for i, m := range members {
		cents := remaining
		if i < len(members)-1 {
			cents = rand.Int64N(remaining + 1)
		}
		remaining -= cents

		expense.Shares = append(expense.Shares, &ledgerv1.Share{
			ParticipantId: c.Members[m],
			Owed:          &ledgerv1.Decimal{Value: decimal.New(cents, -2).String()},
		})
	}

	return expense
}

func reportBalances(
	ctx context.Context,
	c Config,
	client ledgerv1.LedgerServiceClient,
	groupID string,
) {
	ticker := time.NewTicker(c.BalanceInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			charged, err := client.ProcessDueSubscriptions(ctx, connect.NewRequest(&ledgerv1.ProcessDueSubscriptionsRequest{}))
			if err != nil {
				slog.ErrorContext(ctx, "process due subscriptions", "error", err)
			} else if len(charged.Msg.ExpenseIds) > 0 {
				slog.InfoContext(ctx, "charged subscriptions", "expense_ids", charged.Msg.ExpenseIds)
			}

			balances, err := client.GroupBalances(ctx, connect.NewRequest(&ledgerv1.GroupBalancesRequest{
				GroupId: groupID,
			}))
			if err != nil {
				slog.ErrorContext(ctx, "get group balances", "error", err)
				continue
			}

			for _, s := range balances.Msg.Settlements {
				slog.InfoContext(ctx, "settlement", "from", s.From, "to", s.To, "amount", s.Amount.GetValue())
			}

			member := c.Members[rand.IntN(len(c.Members))]
			summary, err := client.Summary(ctx, connect.NewRequest(&ledgerv1.SummaryRequest{
				ParticipantId: member,
			}))
			if err != nil {
				slog.ErrorContext(ctx, "get summary", "error", err, "member", member)
				continue
			}

			slog.InfoContext(ctx, "summary",
				"member", member,
				"you_owe", summary.Msg.YouOwe.GetValue(),
				"you_are_owed", summary.Msg.YouAreOwed.GetValue(),
				"total_balance", summary.Msg.TotalBalance.GetValue(),
			)
		}
	}
}
