package ledger

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonkvalheim/bankist/internal/model"
	"github.com/simonkvalheim/bankist/internal/repository"
)

var fixedNow = time.Date(2023, 2, 12, 10, 0, 0, 0, time.UTC)

func newTestEngine() *Engine {
	return NewEngine(func() time.Time { return fixedNow }, zerolog.Nop())
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func accountWith(owner string, amounts ...int64) *model.Account {
	movements := make([]model.Movement, 0, len(amounts))
	for _, a := range amounts {
		movements = append(movements, model.NewMovement(fixedNow.Add(-48*time.Hour), decimal.NewFromInt(a)))
	}
	return model.NewAccount(owner, 1111, dec("1.2"), "en-US", movements)
}

func amountsOf(acc *model.Account) []string {
	out := make([]string, 0, len(acc.Movements))
	for _, m := range acc.Movements {
		out = append(out, m.Amount.String())
	}
	return out
}

func TestComputeBalance(t *testing.T) {
	e := newTestEngine()
	acc := accountWith("Jonas Schmedtmann", 200, 450, -400, 3000, -650, -130, 70, 1300)

	got := e.ComputeBalance(acc)

	assert.True(t, got.Equal(dec("3840")), "balance = %s, want 3840", got)
	assert.True(t, acc.Balance.Equal(got), "cached balance not refreshed")
}

func TestTransfer_Scenario(t *testing.T) {
	e := newTestEngine()
	from := accountWith("Jonas Schmedtmann", 200, 450, -400, 3000)
	to := accountWith("Jessica Davis", 5000)

	result, err := e.Transfer(from, to, dec("100"))
	require.NoError(t, err)

	assert.True(t, e.ComputeBalance(from).Equal(dec("3150")))
	assert.True(t, e.ComputeBalance(to).Equal(dec("5100")))

	assert.True(t, result.Debit.Amount.Equal(dec("-100")))
	assert.True(t, result.Credit.Amount.Equal(dec("100")))
	assert.Equal(t, fixedNow, result.Debit.CreatedAt)
	assert.Equal(t, result.Debit.CreatedAt, result.Credit.CreatedAt)

	assert.Equal(t, result.Debit, from.Movements[len(from.Movements)-1])
	assert.Equal(t, result.Credit, to.Movements[len(to.Movements)-1])
}

func TestTransfer_ConservesTotalBalance(t *testing.T) {
	e := newTestEngine()
	from := accountWith("Jonas Schmedtmann", 200, 450, -400, 3000)
	to := accountWith("Jessica Davis", 5000, -30)
	other := accountWith("Sarah Smith", 430)
	dir := repository.NewDirectory(from, to, other)

	before := dir.TotalBalance()
	_, err := e.Transfer(from, to, dec("3250"))
	require.NoError(t, err)

	assert.True(t, dir.TotalBalance().Equal(before))
	assert.True(t, e.ComputeBalance(from).IsZero())
}

func TestTransfer_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		to      func(from *model.Account) *model.Account
		amount  string
		wantErr error
	}{
		{
			name:    "missing recipient",
			to:      func(*model.Account) *model.Account { return nil },
			amount:  "100",
			wantErr: model.ErrInvalidToAccount,
		},
		{
			name:    "same account",
			to:      func(from *model.Account) *model.Account { return from },
			amount:  "100",
			wantErr: model.ErrSameAccount,
		},
		{
			name:    "zero amount",
			to:      func(*model.Account) *model.Account { return accountWith("Jessica Davis", 10) },
			amount:  "0",
			wantErr: model.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			to:      func(*model.Account) *model.Account { return accountWith("Jessica Davis", 10) },
			amount:  "-50",
			wantErr: model.ErrInvalidAmount,
		},
		{
			name:    "exceeds balance",
			to:      func(*model.Account) *model.Account { return accountWith("Jessica Davis", 10) },
			amount:  "3250.01",
			wantErr: model.ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine()
			from := accountWith("Jonas Schmedtmann", 200, 450, -400, 3000)
			to := tt.to(from)

			fromBefore := amountsOf(from)
			var toBefore []string
			if to != nil {
				toBefore = amountsOf(to)
			}

			result, err := e.Transfer(from, to, dec(tt.amount))

			assert.Nil(t, result)
			assert.ErrorIs(t, err, model.ErrInvalidTransfer)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, fromBefore, amountsOf(from))
			if to != nil {
				assert.Equal(t, toBefore, amountsOf(to))
			}
		})
	}
}

func TestTransfer_UsesFreshBalance(t *testing.T) {
	e := newTestEngine()
	from := accountWith("Jonas Schmedtmann", 100)
	to := accountWith("Jessica Davis", 10)

	// A stale cache must not allow overdrawing
	from.Balance = dec("1000000")

	_, err := e.Transfer(from, to, dec("500"))
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)

	_, err = e.Transfer(from, to, dec("100"))
	assert.NoError(t, err)
}

func TestRequestLoan(t *testing.T) {
	tests := []struct {
		name      string
		movements []int64
		amount    string
		wantErr   error
	}{
		{
			name:      "deposit of exactly ten percent",
			movements: []int64{10, -5},
			amount:    "50",
		},
		{
			name:      "deposit of exactly ten percent at the edge",
			movements: []int64{100},
			amount:    "1000",
		},
		{
			name:      "largest movement too small",
			movements: []int64{430, 1000, 700, 50, 90},
			amount:    "100000",
			wantErr:   model.ErrNoQualifyingDeposit,
		},
		{
			name:      "max movement 90 against 1000",
			movements: []int64{90, 50, -20},
			amount:    "1000",
			wantErr:   model.ErrNoQualifyingDeposit,
		},
		{
			name:      "withdrawals never qualify",
			movements: []int64{-5000},
			amount:    "10",
			wantErr:   model.ErrNoQualifyingDeposit,
		},
		{
			name:      "zero amount",
			movements: []int64{500},
			amount:    "0",
			wantErr:   model.ErrInvalidAmount,
		},
		{
			name:      "negative amount",
			movements: []int64{500},
			amount:    "-10",
			wantErr:   model.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine()
			acc := accountWith("Sarah Smith", tt.movements...)
			countBefore := len(acc.Movements)

			loan, err := e.RequestLoan(acc, dec(tt.amount))

			if tt.wantErr != nil {
				assert.Nil(t, loan)
				assert.ErrorIs(t, err, model.ErrLoanRejected)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Len(t, acc.Movements, countBefore)
				return
			}

			require.NoError(t, err)
			require.Len(t, acc.Movements, countBefore+1)
			last := acc.Movements[len(acc.Movements)-1]
			assert.True(t, last.Amount.Equal(dec(tt.amount)))
			assert.Equal(t, fixedNow, last.CreatedAt)
			assert.Equal(t, *loan, last)
		})
	}
}

func TestCloseAccount(t *testing.T) {
	e := newTestEngine()
	a := accountWith("Jonas Schmedtmann", 100)
	b := accountWith("Jessica Davis", 100)
	dir := repository.NewDirectory(a, b)

	require.NoError(t, e.CloseAccount(a, dir))
	assert.Equal(t, 1, dir.Len())

	_, err := dir.FindByUsername("js")
	assert.ErrorIs(t, err, model.ErrAccountNotFound)

	err = e.CloseAccount(a, dir)
	assert.ErrorIs(t, err, model.ErrAccountNotFound)
	assert.Equal(t, 1, dir.Len())
}

func TestSumInterestEligibleDeposits(t *testing.T) {
	tests := []struct {
		name      string
		movements []int64
		rate      string
		want      string
	}{
		{
			name:      "seed account one",
			movements: []int64{200, 450, -400, 3000, -650, -130, 70, 1300},
			rate:      "1.2",
			want:      "59.4", // 2.4 + 5.4 + 36 + 15.6, the 70 deposit earns only 0.84
		},
		{
			name:      "threshold is strict",
			movements: []int64{250}, // earns exactly 1
			rate:      "0.4",
			want:      "0",
		},
		{
			name:      "threshold applies per deposit not total",
			movements: []int64{80, 80, 80, 80},
			rate:      "1.2",
			want:      "0",
		},
		{
			name:      "no movements",
			movements: nil,
			rate:      "1.2",
			want:      "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := accountWith("Jonas Schmedtmann", tt.movements...)
			got := SumInterestEligibleDeposits(acc.Movements, dec(tt.rate))
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestBuildTransferMovements_SumsToZero(t *testing.T) {
	for _, amount := range []string{"1.00", "0.01", "12345.67", "999999.99"} {
		t.Run("amount_"+amount, func(t *testing.T) {
			debit, credit := buildTransferMovements(fixedNow, dec(amount))
			assert.True(t, debit.Amount.Add(credit.Amount).IsZero())
			assert.Equal(t, debit.CreatedAt, credit.CreatedAt)
		})
	}
}
