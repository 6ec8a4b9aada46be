package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/studyhub-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyhub-backend/internal/adapter/postgres/flashcard"
	"github.com/heartmarshall/studyhub-backend/internal/app"
	"github.com/heartmarshall/studyhub-backend/internal/domain"
	"github.com/heartmarshall/studyhub-backend/internal/service/study"
	"github.com/heartmarshall/studyhub-backend/pkg/ctxutil"
)

const questionPreview = 60

func newDueCmd(opts *options) *cobra.Command {
	var (
		user   string
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "due",
		Short: "Show the flashcards due today for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := uuid.Parse(user)
			if err != nil {
				return fmt.Errorf("--user: %w", err)
			}

			cfg, err := opts.load()
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg.Log)

			pool, err := postgres.NewPool(cmd.Context(), cfg.Database)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer pool.Close()

			svc := study.NewService(logger, flashcard.New(pool), postgres.NewTxManager(pool, postgres.WithLockTimeout(cfg.Database.LockTimeout)), clockwork.NewRealClock(), study.Config{
				Timezone:        cfg.SRS.Location,
				DefaultDueLimit: cfg.SRS.DefaultDueLimit,
				MaxDueLimit:     cfg.SRS.MaxDueLimit,
			})

			ctx := ctxutil.WithUserID(cmd.Context(), userID)
			cards, err := svc.DueFlashcards(ctx, study.DueFlashcardsInput{Limit: limit})
			if err != nil {
				return err
			}

			logger.Debug("due cards loaded", slog.String("user_id", userID.String()), slog.Int("count", len(cards)))

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(dueRows(cards))
			}
			return printDue(cmd, cards)
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "user id (uuid)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of cards (0 = configured default)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

type dueRow struct {
	ID         int64   `json:"id"`
	NextReview string  `json:"nextReview"`
	Interval   int     `json:"interval"`
	EaseFactor float64 `json:"easeFactor"`
	Question   string  `json:"question"`
}

func dueRows(cards []*domain.Flashcard) []dueRow {
	rows := make([]dueRow, 0, len(cards))
	for _, c := range cards {
		rows = append(rows, dueRow{
			ID:         c.ID,
			NextReview: c.Memory.NextReviewDate.Format("2006-01-02"),
			Interval:   c.Memory.Interval,
			EaseFactor: c.Memory.EaseFactor,
			Question:   c.Question,
		})
	}
	return rows
}

func printDue(cmd *cobra.Command, cards []*domain.Flashcard) error {
	if len(cards) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "nothing due")
		return nil
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNEXT REVIEW\tINTERVAL\tEASE\tQUESTION")
	for _, r := range dueRows(cards) {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%.2f\t%s\n", r.ID, r.NextReview, r.Interval, r.EaseFactor, preview(r.Question))
	}
	return tw.Flush()
}

func preview(s string) string {
	if utf8.RuneCountInString(s) <= questionPreview {
		return s
	}
	return string([]rune(s)[:questionPreview-1]) + "…"
}
