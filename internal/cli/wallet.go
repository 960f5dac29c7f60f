package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/avc/tscoins-wallet/internal/domain"
	"github.com/avc/tscoins-wallet/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(creditCmd)
	rootCmd.AddCommand(debitCmd)
	rootCmd.AddCommand(historyCmd)

	creditCmd.Flags().String("category", string(domain.CategoryWinning), "Credit category: bonus or winning")
	creditCmd.Flags().StringP("description", "m", "", "Transaction description")
	debitCmd.Flags().StringP("description", "m", "", "Transaction description")
}

var balanceCmd = &cobra.Command{
	Use:   "balance USER_ID",
	Short: "Show a wallet summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runBalance,
}

func runBalance(cmd *cobra.Command, args []string) error {
	userID, err := parseUserID(args[0])
	if err != nil {
		return err
	}

	return withBackend(cmd, func(b *backend, logger *zap.Logger) error {
		wallet, err := service.NewWalletService(b.profiles, logger, nil).GetWallet(cmd.Context(), userID)
		if err != nil {
			return err
		}
		printWallet(cmd, wallet)
		return nil
	})
}

var creditCmd = &cobra.Command{
	Use:   "credit USER_ID AMOUNT",
	Short: "Credit coins to a wallet",
	Long:  `Credit coins to a wallet, for example tournament winnings awarded by staff.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runCredit,
}

func runCredit(cmd *cobra.Command, args []string) error {
	userID, amount, err := parseTarget(args)
	if err != nil {
		return err
	}
	category, _ := cmd.Flags().GetString("category")
	description, _ := cmd.Flags().GetString("description")

	if !domain.Category(category).Valid() || domain.Category(category) == domain.CategoryPurchase {
		return fmt.Errorf("invalid category %q: use bonus or winning", category)
	}
	if description == "" {
		description = defaultDescription(domain.Category(category))
	}

	return withBackend(cmd, func(b *backend, logger *zap.Logger) error {
		wallets := service.NewWalletService(b.profiles, logger, nil)
		profile, err := wallets.Credit(cmd.Context(), userID, amount, domain.Category(category), description)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Credited %d coins to user %d\n", amount, userID)
		wallet := domain.WalletOf(profile)
		printWallet(cmd, &wallet)
		return nil
	})
}

var debitCmd = &cobra.Command{
	Use:   "debit USER_ID AMOUNT",
	Short: "Debit coins from a wallet",
	Args:  cobra.ExactArgs(2),
	RunE:  runDebit,
}

func runDebit(cmd *cobra.Command, args []string) error {
	userID, amount, err := parseTarget(args)
	if err != nil {
		return err
	}
	description, _ := cmd.Flags().GetString("description")
	if description == "" {
		description = "Adjustment"
	}

	return withBackend(cmd, func(b *backend, logger *zap.Logger) error {
		wallets := service.NewWalletService(b.profiles, logger, nil)
		profile, err := wallets.Debit(cmd.Context(), userID, amount, description)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Debited %d coins from user %d\n", amount, userID)
		wallet := domain.WalletOf(profile)
		printWallet(cmd, &wallet)
		return nil
	})
}

var historyCmd = &cobra.Command{
	Use:   "history USER_ID",
	Short: "List recent wallet transactions, newest first",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	userID, err := parseUserID(args[0])
	if err != nil {
		return err
	}

	return withBackend(cmd, func(b *backend, logger *zap.Logger) error {
		entries, err := service.NewWalletService(b.profiles, logger, nil).History(cmd.Context(), userID)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No transactions yet")
			return nil
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "DATE\tAMOUNT\tTYPE\tDESCRIPTION")
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Date.UTC().Format("2006-01-02 15:04"), e.SignedAmount, e.Kind, e.Description)
		}
		return tw.Flush()
	})
}

func parseTarget(args []string) (int64, int64, error) {
	userID, err := parseUserID(args[0])
	if err != nil {
		return 0, 0, err
	}
	amount, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || amount <= 0 {
		return 0, 0, fmt.Errorf("invalid amount %q: must be a positive integer", args[1])
	}
	return userID, amount, nil
}

func defaultDescription(category domain.Category) string {
	if category == domain.CategoryBonus {
		return "Bonus"
	}
	return "Tournament Winnings"
}

func printWallet(cmd *cobra.Command, w *domain.Wallet) {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Balance:\t%d\n", w.CurrentBalance)
	fmt.Fprintf(tw, "Total earned:\t%d\n", w.TotalCoins)
	fmt.Fprintf(tw, "Spent:\t%d\n", w.UsedCoins)
	fmt.Fprintf(tw, "Bonus:\t%d\n", w.BonusCoins)
	fmt.Fprintf(tw, "Winnings:\t%d\n", w.WinningCoins)
	_ = tw.Flush()
}
