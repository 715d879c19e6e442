// Command simplify prints the transfers that settle a YAML ledger.
//
//	simplify LEDGER.yml [PARTICIPANT]
//
// With a participant it also prints how much they owe and are owed.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/iskorotkov/splitledger-backend/internal/domain"
	"github.com/iskorotkov/splitledger-backend/internal/ledgerfile"
	"github.com/iskorotkov/splitledger-backend/internal/settle"
)

type Config struct {
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"warn"`
}

func main() {
	config, err := env.ParseAs[Config]()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.LogLevel,
	})))

	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintln(os.Stderr, "usage: simplify LEDGER.yml [PARTICIPANT]")
		os.Exit(2)
	}

	var participant domain.ParticipantID
	if len(os.Args) == 3 {
		participant = domain.ParticipantID(os.Args[2])
	}

	if err := run(os.Stdout, os.Args[1], participant); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, path string, participant domain.ParticipantID) error {
	expenses, err := ledgerfile.LoadFile(path)
	if err != nil {
		return err
	}

	settlements := settle.Simplify(expenses)
	slog.Debug("simplified ledger", "expenses", len(expenses), "settlements", len(settlements))

	if len(settlements) == 0 {
		fmt.Fprintln(w, "all settled")
	}
	for _, s := range settlements {
		fmt.Fprintf(w, "%s -> %s: %s\n", s.From, s.To, s.Amount.StringFixed(2))
	}

	if participant == "" {
		return nil
	}

	summary := settle.Summarize(settlements, participant)
	fmt.Fprintf(w, "\n%s owes %s, is owed %s, balance %s\n",
		participant,
		summary.YouOwe.StringFixed(2),
		summary.YouAreOwed.StringFixed(2),
		summary.TotalBalance.StringFixed(2),
	)

	return nil
}
