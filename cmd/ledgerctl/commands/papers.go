package commands

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/forgo/learnledger/api/internal/model"
)

func papersCmd(opts *options) *cobra.Command {
	var query, sort string

	cmd := &cobra.Command{
		Use:   "papers",
		Short: "List research papers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			papers, err := opts.client().Papers(cmd.Context(), query, sort)
			if err != nil {
				return err
			}
			return opts.render(cmd.OutOrStdout(), papers, func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tTITLE\tSTAKE\tACCESS\tREAD")
				for _, p := range papers {
					access := "locked"
					if p.Accessible {
						access = "open"
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Title, formatEDU(p.RequiredStake), access, p.ReadingTime)
				}
				_ = tw.Flush()
			})
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "filter by title or description")
	cmd.Flags().StringVar(&sort, "sort", "", "order: title, stake or newest (default title)")
	return cmd
}

func printSession(w io.Writer, s model.ReadingSession) {
	fmt.Fprintf(w, "%s: %s\n", s.Title, s.ReadingTime)
}

func readCmd(opts *options) *cobra.Command {
	var duration, poll time.Duration

	cmd := &cobra.Command{
		Use:   "read <paperId>",
		Short: "Open a paper and show the reading clock until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			api := opts.client()
			out := cmd.OutOrStdout()

			session, err := api.OpenSession(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Reading %s (%s)\n", session.Title, session.Link)

			var deadline <-chan time.Time
			if duration > 0 {
				timer := time.NewTimer(duration)
				defer timer.Stop()
				deadline = timer.C
			}
			ticker := time.NewTicker(poll)
			defer ticker.Stop()

		loop:
			for {
				select {
				case <-ctx.Done():
					break loop
				case <-deadline:
					break loop
				case <-ticker.C:
					current, err := api.Session(ctx)
					if err != nil {
						break loop
					}
					printSession(out, current)
				}
			}

			// Close even after an interrupt
			closed, err := api.CloseSession(context.WithoutCancel(ctx), args[0])
			if err != nil {
				return err
			}
			return opts.render(out, closed, func(w io.Writer) {
				fmt.Fprintf(w, "Closed %s after %s\n", closed.Title, closed.ReadingTime)
			})
		},
	}
	cmd.Flags().DurationVar(&duration, "for", 0, "stop after this long (default until interrupted)")
	cmd.Flags().DurationVar(&poll, "poll", time.Second, "how often to print the clock")
	return cmd
}

func timesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "times",
		Short: "List accumulated reading times",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			times, err := opts.client().ReadingTimes(cmd.Context())
			if err != nil {
				return err
			}
			return opts.render(cmd.OutOrStdout(), times, func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "PAPER\tTIME")
				for _, t := range times {
					fmt.Fprintf(tw, "%s\t%s\n", t.PaperID, t.ReadingTime)
				}
				_ = tw.Flush()
			})
		},
	}
}
