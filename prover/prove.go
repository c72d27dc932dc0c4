package prover

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/RobertDoza/fol-prover/internal/logic"
	"github.com/RobertDoza/fol-prover/internal/session"
)

// Prove runs an interactive session for f on the terminal.
func Prove(ctx context.Context, logger *zap.Logger, config Config, f logic.Formula, out io.Writer) (session.Summary, error) {
	prompter := session.NewLinerPrompter(config.HistoryPath())
	defer func() {
		if err := prompter.Close(); err != nil && logger != nil {
			logger.Warn("closing terminal", zap.Error(err))
		}
	}()

	s := session.New(f, prompter, out, logger, session.Options{ShowMetaVariables: config.ShowMetaVariables})
	return s.Run(ctx)
}
