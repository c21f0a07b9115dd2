package splitter

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
)

// CashController allows to manage coins stored by the accounts.
// Required functionality is implemented by the x/cash extension.
type CashController interface {
	Balance(weave.KVStore, weave.Address) (coin.Coins, error)
	MoveCoins(weave.KVStore, weave.Address, weave.Address, coin.Coin) error
}

// payout splits the funds stored on the splitter account among the payees,
// proportionally to their shares. Any indivisible leftover stays on the
// splitter account.
func payout(db weave.KVStore, ctrl CashController, d *Distribution) (coin.Coins, error) {
	shares := make([]int32, len(d.Payees))
	for i, p := range d.Payees {
		shares[i] = p.Share
	}
	// Dividing by the greatest common divisor keeps the chunks as big as
	// possible, which leaves the smallest leftover.
	div := findGcd(shares...)
	var chunks int64
	for _, s := range shares {
		chunks += int64(s / div)
	}

	balance, err := ctrl.Balance(db, d.Address)
	switch {
	case err == nil:
		balance, err = coin.NormalizeCoins(balance)
		if err != nil {
			return nil, errors.Wrap(err, "cannot normalize balance")
		}
	case errors.ErrNotFound.Is(err):
		// No revenue was collected yet.
		return nil, nil
	default:
		return nil, errors.Wrap(err, "cannot acquire splitter balance")
	}

	var paid coin.Coins
	for _, c := range balance {
		if !c.IsPositive() {
			continue
		}
		one, _, err := c.Divide(chunks)
		if err != nil {
			return nil, errors.Wrap(err, "cannot split revenue")
		}
		for _, p := range d.Payees {
			amount, err := one.Multiply(int64(p.Share / div))
			if err != nil {
				return nil, errors.Wrap(err, "cannot multiply chunk")
			}
			// Multiplication can leave a full unit in the fractional part.
			if amount, err = coin.NewCoin(0, 0, amount.Ticker).Add(amount); err != nil {
				return nil, errors.Wrap(err, "cannot normalize chunk")
			}
			if amount.IsZero() {
				continue
			}
			if err := ctrl.MoveCoins(db, d.Address, p.Address, amount); err != nil {
				return nil, errors.Wrap(err, "cannot move coins")
			}
			if paid, err = paid.Add(amount); err != nil {
				return nil, errors.Wrap(err, "cannot sum payout")
			}
		}
	}
	return paid, nil
}

// findGcd returns the greatest common divisor of all values.
func findGcd(values ...int32) int32 {
	switch len(values) {
	case 0:
		return 0
	case 1:
		return values[0]
	}
	res := values[0]
	for _, v := range values[1:] {
		res = gcd(res, v)
	}
	return res
}

func gcd(a, b int32) int32 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
