package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/reqcheck/modules/project"
	"github.com/dmitrymomot/reqcheck/pkg/binder"
	"github.com/dmitrymomot/reqcheck/pkg/logger"
	"github.com/dmitrymomot/reqcheck/pkg/validator"
)

// errRejected makes the process exit non-zero without printing a second error.
var errRejected = errors.New("document rejected")

func newCheckCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a project document and print the report",
		Long: `Validate a CreateProjectRequest JSON document read from a file or stdin.

Prints the report as JSON and exits with status 1 when anything was rejected.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runCheck(cmd, args, lang)
			if err != nil && !errors.Is(err, errRejected) {
				fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "message language (default DEFAULT_LOCALE)")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string, lang string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if lang == "" {
		lang = cfg.DefaultLocale
	}

	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	tr, err := newTranslator(cmd.Context(), cfg, logger.Nop())
	if err != nil {
		return err
	}

	return check(cmd.Context(), in, cmd.OutOrStdout(), validator.NewTranslatedPolicy(tr, lang), cfg.MaxBodyBytes)
}

// check decodes one document from in with the same rules as the HTTP
// endpoint and writes the report to out.
func check(ctx context.Context, in io.Reader, out io.Writer, policy validator.MessagePolicy, maxBytes int64) error {
	body, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "/", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	var doc project.CreateProjectRequest
	if err := binder.JSON(binder.WithMaxBodySize(maxBytes))(req, &doc); err != nil {
		return err
	}

	errs := validator.NewErrors(validator.WithPolicy(policy))
	doc.Validate(errs, "")

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(errs); err != nil {
		return err
	}
	if errs.IsNotEmpty() {
		return errRejected
	}
	return nil
}
