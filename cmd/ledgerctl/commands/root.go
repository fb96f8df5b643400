package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forgo/learnledger/api/internal/client"
	"github.com/forgo/learnledger/api/internal/model"
)

// APIEnv overrides the default API address
const APIEnv = "LEARNLEDGER_API"

type options struct {
	baseURL string
	asJSON  bool
	api     *client.Client
}

func (o *options) client() *client.Client {
	if o.api == nil {
		o.api = client.New(client.Config{BaseURL: o.baseURL})
	}
	return o.api
}

// render writes v as indented JSON when --json is set, otherwise calls text
func (o *options) render(w io.Writer, v interface{}, text func(w io.Writer)) error {
	if o.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(w)
	return nil
}

// NewRoot builds the ledgerctl command tree
func NewRoot() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "ledgerctl",
		Short:         "Command line client for the LearnLedger API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultAPI := client.DefaultBaseURL
	if v := os.Getenv(APIEnv); v != "" {
		defaultAPI = v
	}
	root.PersistentFlags().StringVar(&opts.baseURL, "api", defaultAPI, "API base URL (env "+APIEnv+")")
	root.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print raw JSON")

	root.AddCommand(
		accountCmd(opts),
		stakeCmd(opts),
		voteCmd(opts),
		rewardsCmd(opts),
		accessCmd(opts),
		sectorsCmd(opts),
		roundCmd(opts),
		papersCmd(opts),
		readCmd(opts),
		timesCmd(opts),
		walletCmd(opts),
		themeCmd(opts),
	)
	return root
}

// Describe renders an API problem as a one-line message
func Describe(err error) string {
	var problem *model.ProblemDetails
	if !errors.As(err, &problem) {
		return err.Error()
	}
	msg := problem.Title
	if problem.Detail != "" {
		msg = problem.Detail
	}
	var b strings.Builder
	b.WriteString(msg)
	for _, fe := range problem.Errors {
		fmt.Fprintf(&b, "; %s: %s", fe.Field, fe.Message)
	}
	fmt.Fprintf(&b, " (%d)", problem.Status)
	return b.String()
}
