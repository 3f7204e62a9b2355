package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/Palaka108/kb-quiz-adventure/internal/db/queries"
	"github.com/Palaka108/kb-quiz-adventure/internal/db/repository"
	"github.com/Palaka108/kb-quiz-adventure/internal/question"
)

const importTimeout = 2 * time.Minute

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Upsert a YAML question bank into Postgres",
		Long: `Validate a YAML question bank and upsert every question into kb_questions
inside a single transaction. The connection string is read from --database-url
or the DATABASE_URL environment variable.`,
		RunE: runImport,
	}
	cmd.Flags().String("bank", "", "Path to the question bank YAML (required)")
	cmd.Flags().String("database-url", "", "Postgres connection string (overrides DATABASE_URL)")
	_ = cmd.MarkFlagRequired("bank")
	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	bankPath, _ := cmd.Flags().GetString("bank")
	dsn, _ := cmd.Flags().GetString("database-url")
	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}
	if dsn == "" {
		return errors.New("set --database-url or DATABASE_URL")
	}
	logger := cliLogger(cmd)

	bank, err := question.LoadYAMLFile(bankPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), importTimeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		repo := repository.NewQuestionRepository(queries.New(pool).WithTx(tx))
		for _, q := range bank {
			params, err := q.UpsertParams()
			if err != nil {
				return err
			}
			if err := repo.Upsert(ctx, params); err != nil {
				return fmt.Errorf("upsert %s: %w", q.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info().Int("questions", len(bank)).Str("bank", bankPath).Msg("question bank imported")
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d questions\n", len(bank))
	return nil
}
