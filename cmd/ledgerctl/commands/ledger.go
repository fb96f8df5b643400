package commands

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/forgo/learnledger/api/internal/model"
)

func formatEDU(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " EDU"
}

func printAccount(w io.Writer, a model.Account) {
	fmt.Fprintf(w, "Balance:       %s\n", formatEDU(a.Balance))
	fmt.Fprintf(w, "Staked:        %s\n", formatEDU(a.Staked))
	fmt.Fprintf(w, "Reward points: %d VED\n", a.RewardPoints)
	fmt.Fprintf(w, "Votes used:    %d\n", a.VotesUsed)
}

func accountCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show balance, stake, reward points and round cap usage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := opts.client().Account(cmd.Context())
			if err != nil {
				return err
			}
			return opts.render(cmd.OutOrStdout(), summary, func(w io.Writer) {
				fmt.Fprintf(w, "Account %s\n", summary.ID)
				printAccount(w, summary.Account)
				fmt.Fprintf(w, "Round cap:     %d (%d remaining, %s)\n",
					summary.RoundCap, summary.VotesRemaining, summary.CapState)
				fmt.Fprintf(w, "Accessible:    %v\n", summary.AccessiblePaperIDs)
			})
		},
	}
}

func stakeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stake <amount>",
		Short: "Stake EDU tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
				return fmt.Errorf("invalid amount %q", args[0])
			}
			result, err := opts.client().Stake(cmd.Context(), amount)
			if err != nil {
				return err
			}
			return opts.render(cmd.OutOrStdout(), result, func(w io.Writer) {
				fmt.Fprintf(w, "Staked %s (+%d VED)\n", formatEDU(result.Amount), result.Bonus)
				printAccount(w, result.Account)
			})
		},
	}
}

func voteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "vote <sector> <amount>",
		Short: "Spend reward points on a research sector",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[1])
			}
			result, err := opts.client().Vote(cmd.Context(), args[0], amount)
			if err != nil {
				return err
			}
			return opts.render(cmd.OutOrStdout(), result, func(w io.Writer) {
				fmt.Fprintf(w, "Voted %d on %s (%d total)\n", amount, result.Sector.Name, result.Sector.Votes)
				printAccount(w, result.Account)
			})
		},
	}
}

func rewardsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rewards",
		Short: "Distribute reward points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := opts.client().DistributeRewards(cmd.Context())
			if err != nil {
				return err
			}
			return opts.render(cmd.OutOrStdout(), result, func(w io.Writer) {
				fmt.Fprintf(w, "Distributed %d VED, payout %s\n", result.PointsBefore, formatEDU(result.Payout))
			})
		},
	}
}

func accessCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "access <paperId>",
		Short: "Check whether a paper is on the account's access list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			check, err := opts.client().CheckAccess(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return opts.render(cmd.OutOrStdout(), check, func(w io.Writer) {
				if check.HasAccess {
					fmt.Fprintf(w, "%s: access granted\n", check.PaperID)
				} else {
					fmt.Fprintf(w, "%s: no access\n", check.PaperID)
				}
			})
		},
	}
}

func sectorsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sectors",
		Short: "List research sectors and their votes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sectors, err := opts.client().Sectors(cmd.Context())
			if err != nil {
				return err
			}
			return opts.render(cmd.OutOrStdout(), sectors, func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tVOTES")
				for _, s := range sectors {
					fmt.Fprintf(tw, "%s\t%s\t%d\n", s.ID, s.Name, s.Votes)
				}
				_ = tw.Flush()
			})
		},
	}
}

func roundCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "round",
		Short: "Show the active voting round",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := opts.client().Round(cmd.Context())
			if err != nil {
				return err
			}
			return opts.render(cmd.OutOrStdout(), status, func(w io.Writer) {
				r := status.Round
				fmt.Fprintf(w, "%s (%s - %s, %d days left)\n", r.Name, r.StartLabel, r.EndLabel, r.DaysRemaining)
				fmt.Fprintf(w, "Votes: %d/%d (%s)\n", status.VotesUsed, status.Cap, status.CapState)
			})
		},
	}
}
