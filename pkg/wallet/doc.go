// Package wallet retrieves customer wallet balances from the wallet API and
// formats amounts for display.
//
// The client issues exactly one GET per call. Any transport error, non-2xx
// status or body without a numeric "balance" field yields
// ErrBalanceUnavailable; there is no retry.
//
//	client := wallet.NewClient("https://wallet.internal", wallet.WithTimeout(5*time.Second))
//	bal, err := client.Balance(ctx, "cus_123")
//	if errors.Is(err, wallet.ErrBalanceUnavailable) {
//	    // show "balance unavailable"
//	}
//
//	f := wallet.NewFormatter(language.AmericanEnglish)
//	f.Format(bal.Amount, bal.Currency) // "$1,234.50"
package wallet
