package split_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/splitbill/internal/expense/split"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func shares(pairs ...string) []split.Share {
	out := make([]split.Share, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, split.Share{ParticipantID: pairs[i], Value: d(pairs[i+1])})
	}
	return out
}

func assertAmounts(t *testing.T, want map[string]string, got split.Result) {
	t.Helper()
	require.Len(t, got, len(want))
	for id, amount := range want {
		assert.True(t, got.Amount(id).Equal(d(amount)), "%s: want %s, got %s", id, amount, got.Amount(id))
	}
}

func TestCalculateSplit_Equal(t *testing.T) {
	calc := split.NewCalculator(split.NewSplitStrategyFactory())

	got, err := calc.CalculateSplit(split.Request{
		TotalAmount:    d("100"),
		ParticipantIDs: []string{"a", "b", "c"},
		Method:         split.MethodEqual,
	})

	require.NoError(t, err)
	assertAmounts(t, map[string]string{"a": "33.33", "b": "33.33", "c": "33.34"}, got)
	assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].ParticipantID, got[1].ParticipantID, got[2].ParticipantID})
}

func TestCalculateSplit_EqualSharesAddUpToTotal(t *testing.T) {
	calc := split.NewCalculator(nil)

	for _, amount := range []string{"0.01", "0.05", "1", "10", "99.99", "100", "123.45", "1000.01", "7777.77"} {
		for n := 1; n <= 12; n++ {
			ids := make([]string, n)
			for i := range ids {
				ids[i] = fmt.Sprintf("u%d", i)
			}
			t.Run(fmt.Sprintf("%s/%d", amount, n), func(t *testing.T) {
				got, err := calc.CalculateSplit(split.Request{
					TotalAmount:    d(amount),
					ParticipantIDs: ids,
					Method:         split.MethodEqual,
				})
				require.NoError(t, err)
				assert.True(t, got.Sum().Equal(d(amount)), "sum %s", got.Sum())
			})
		}
	}
}

func TestCalculateSplit_Percentage(t *testing.T) {
	calc := split.NewCalculator(nil)

	tests := []struct {
		name   string
		total  string
		ids    []string
		shares []split.Share
		want   map[string]string
	}{
		{
			name:   "exact percentages",
			total:  "100",
			ids:    []string{"alice", "bob", "charlie"},
			shares: shares("alice", "50", "bob", "30", "charlie", "20"),
			want:   map[string]string{"alice": "50", "bob": "30", "charlie": "20"},
		},
		{
			name:   "last share absorbs rounding",
			total:  "10",
			ids:    []string{"a", "b", "c"},
			shares: shares("a", "33.33", "b", "33.33", "c", "33.34"),
			want:   map[string]string{"a": "3.33", "b": "3.33", "c": "3.34"},
		},
		{
			name:   "absorbing share follows shares order",
			total:  "100",
			ids:    []string{"a", "b", "c"},
			shares: shares("c", "33.33", "a", "33.33", "b", "33.34"),
			want:   map[string]string{"c": "33.33", "a": "33.33", "b": "33.34"},
		},
		{
			name:   "zero percent participant",
			total:  "80",
			ids:    []string{"a", "b"},
			shares: shares("a", "0", "b", "100"),
			want:   map[string]string{"a": "0", "b": "80"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.CalculateSplit(split.Request{
				TotalAmount:    d(tt.total),
				ParticipantIDs: tt.ids,
				Method:         split.MethodPercentage,
				Shares:         tt.shares,
			})
			require.NoError(t, err)
			assertAmounts(t, tt.want, got)
			assert.True(t, got.Sum().Equal(d(tt.total)))
		})
	}
}

func TestCalculateSplit_Exact(t *testing.T) {
	calc := split.NewCalculator(nil)

	got, err := calc.CalculateSplit(split.Request{
		TotalAmount:    d("100"),
		ParticipantIDs: []string{"a", "b", "c"},
		Method:         split.MethodExact,
		Shares:         shares("a", "20.004", "b", "30", "c", "49.996"),
	})
	require.NoError(t, err)
	assertAmounts(t, map[string]string{"a": "20", "b": "30", "c": "50"}, got)

	got, err = calc.CalculateSplit(split.Request{
		TotalAmount:    d("100"),
		ParticipantIDs: []string{"a", "b"},
		Method:         split.MethodExact,
		Shares:         shares("a", "50", "b", "49.99"),
	})
	require.NoError(t, err)
	assertAmounts(t, map[string]string{"a": "50", "b": "49.99"}, got)
	assert.True(t, got.Sum().Equal(d("99.99")))

	got, err = calc.CalculateSplit(split.Request{
		TotalAmount:    d("10"),
		ParticipantIDs: []string{"a", "b"},
		Method:         split.MethodExact,
		Shares:         shares("a", "10.01", "b", "0"),
	})
	require.NoError(t, err)
	assertAmounts(t, map[string]string{"a": "10.01", "b": "0"}, got)
	for _, sh := range got {
		assert.False(t, sh.Amount.IsNegative(), sh.ParticipantID)
	}
}

func TestCalculateSplit_SingleParticipant(t *testing.T) {
	calc := split.NewCalculator(nil)

	requests := []split.Request{
		{TotalAmount: d("57.31"), ParticipantIDs: []string{"x"}, Method: split.MethodEqual},
		{TotalAmount: d("57.31"), ParticipantIDs: []string{"x"}, Method: split.MethodPercentage, Shares: shares("x", "100")},
		{TotalAmount: d("57.31"), ParticipantIDs: []string{"x"}, Method: split.MethodExact, Shares: shares("x", "57.31")},
	}

	for _, req := range requests {
		t.Run(string(req.Method), func(t *testing.T) {
			got, err := calc.CalculateSplit(req)
			require.NoError(t, err)
			assertAmounts(t, map[string]string{"x": "57.31"}, got)
		})
	}
}

func TestValidateSplit(t *testing.T) {
	calc := split.NewCalculator(nil)

	tests := []struct {
		name     string
		req      split.Request
		wantKind error
		contains string
	}{
		{
			name:     "zero amount",
			req:      split.Request{TotalAmount: decimal.Zero, ParticipantIDs: []string{"a"}, Method: split.MethodEqual},
			wantKind: split.ErrInvalidAmount,
			contains: "greater than 0",
		},
		{
			name:     "negative amount",
			req:      split.Request{TotalAmount: d("-5"), ParticipantIDs: []string{"a"}, Method: split.MethodEqual},
			wantKind: split.ErrInvalidAmount,
			contains: "greater than 0",
		},
		{
			name:     "no participants",
			req:      split.Request{TotalAmount: d("10"), Method: split.MethodEqual},
			wantKind: split.ErrEmptyParticipants,
			contains: "At least one participant",
		},
		{
			name:     "duplicate participants",
			req:      split.Request{TotalAmount: d("10"), ParticipantIDs: []string{"alice", "alice", "bob"}, Method: split.MethodEqual},
			wantKind: split.ErrDuplicateParticipant,
			contains: "Duplicate",
		},
		{
			name:     "unknown method",
			req:      split.Request{TotalAmount: d("10"), ParticipantIDs: []string{"a"}, Method: split.Method("SHARES")},
			wantKind: split.ErrUnknownMethod,
			contains: "Unknown split method",
		},
		{
			name:     "missing shares",
			req:      split.Request{TotalAmount: d("10"), ParticipantIDs: []string{"a"}, Method: split.MethodPercentage},
			wantKind: split.ErrMissingShares,
			contains: "Splits required for PERCENTAGE",
		},
		{
			name: "missing share for participant",
			req: split.Request{TotalAmount: d("100"), ParticipantIDs: []string{"alice", "bob", "charlie"}, Method: split.MethodExact,
				Shares: shares("alice", "50", "bob", "50")},
			wantKind: split.ErrMissingShareFor,
			contains: "Missing split",
		},
		{
			name: "extra share",
			req: split.Request{TotalAmount: d("100"), ParticipantIDs: []string{"alice", "bob", "charlie"}, Method: split.MethodPercentage,
				Shares: shares("alice", "25", "bob", "25", "charlie", "25", "dave", "25")},
			wantKind: split.ErrExtraShareFor,
			contains: "Extra participant",
		},
		{
			name: "duplicate share",
			req: split.Request{TotalAmount: d("100"), ParticipantIDs: []string{"a", "b"}, Method: split.MethodPercentage,
				Shares: shares("a", "50", "b", "25", "b", "25")},
			wantKind: split.ErrDuplicateShare,
			contains: "Duplicate",
		},
		{
			name: "percentage out of range",
			req: split.Request{TotalAmount: d("100"), ParticipantIDs: []string{"a", "b"}, Method: split.MethodPercentage,
				Shares: shares("a", "120", "b", "-20")},
			wantKind: split.ErrInvalidPercentage,
			contains: "between 0 and 100",
		},
		{
			name: "percentages not summing to 100",
			req: split.Request{TotalAmount: d("100"), ParticipantIDs: []string{"alice", "bob"}, Method: split.MethodPercentage,
				Shares: shares("alice", "50", "bob", "40")},
			wantKind: split.ErrPercentagesDoNotSum100,
			contains: "sum to 100",
		},
		{
			name: "negative exact amount",
			req: split.Request{TotalAmount: d("10"), ParticipantIDs: []string{"a", "b"}, Method: split.MethodExact,
				Shares: shares("a", "15", "b", "-5")},
			wantKind: split.ErrInvalidExactAmount,
			contains: "must not be negative",
		},
		{
			name: "exact amounts not matching total",
			req: split.Request{TotalAmount: d("100"), ParticipantIDs: []string{"a", "b"}, Method: split.MethodExact,
				Shares: shares("a", "50", "b", "40")},
			wantKind: split.ErrExactAmountsDoNotSumToTotal,
			contains: "Amounts must sum to 100, got 90",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := calc.ValidateSplit(tt.req)
			assert.False(t, res.Valid)
			assert.Contains(t, res.Error, tt.contains)

			_, err := calc.CalculateSplit(tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantKind)

			var splitErr *split.SplitError
			require.True(t, errors.As(err, &splitErr))
			assert.Equal(t, res.Error, splitErr.Error())
		})
	}
}

func TestValidateSplit_Valid(t *testing.T) {
	calc := split.NewCalculator(nil)

	res := calc.ValidateSplit(split.Request{
		TotalAmount:    d("100"),
		ParticipantIDs: []string{"a", "b"},
		Method:         split.MethodPercentage,
		Shares:         shares("a", "50.005", "b", "50"),
	})

	assert.True(t, res.Valid)
	assert.Empty(t, res.Error)
}

func TestValidateSplit_ErrorPayload(t *testing.T) {
	calc := split.NewCalculator(nil)

	_, err := calc.CalculateSplit(split.Request{
		TotalAmount:    d("100"),
		ParticipantIDs: []string{"a", "b"},
		Method:         split.MethodPercentage,
		Shares:         shares("a", "150", "b", "0"),
	})

	var splitErr *split.SplitError
	require.ErrorAs(t, err, &splitErr)
	assert.Equal(t, "a", splitErr.ParticipantID)
	assert.True(t, splitErr.Value.Equal(d("150")))
}

func TestParseMethod(t *testing.T) {
	for in, want := range map[string]split.Method{
		"equal":      split.MethodEqual,
		"EVEN":       split.MethodEqual,
		"Percentage": split.MethodPercentage,
		" EXACT ":    split.MethodExact,
	} {
		got, err := split.ParseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := split.ParseMethod("weights")
	assert.ErrorIs(t, err, split.ErrUnknownMethod)
}

func TestFactory_Create(t *testing.T) {
	f := split.NewSplitStrategyFactory()

	for _, m := range []split.Method{split.MethodEqual, split.MethodPercentage, split.MethodExact} {
		s, err := f.Create(m)
		require.NoError(t, err)
		assert.Equal(t, m, s.Method())
	}

	s, err := f.CreateFromString("even")
	require.NoError(t, err)
	assert.Equal(t, split.MethodEqual, s.Method())

	_, err = f.Create("RANDOM")
	assert.ErrorIs(t, err, split.ErrUnknownMethod)
}

func TestResult_Map(t *testing.T) {
	r := split.Result{
		{ParticipantID: "a", Amount: d("1.50")},
		{ParticipantID: "b", Amount: d("2.50")},
	}

	m := r.Map()
	assert.Len(t, m, 2)
	assert.True(t, m["b"].Equal(d("2.5")))
	assert.True(t, r.Sum().Equal(d("4")))
	assert.True(t, r.Amount("zzz").IsZero())
}
