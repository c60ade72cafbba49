package promotion

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/coffee-order/internal/domain/beverage"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "expected %s, got %s", want, got)
}

// snapshot flattens a Result into comparable strings.
type snapshot struct {
	Items         [][3]string
	TotalDiscount string
	Final         string
	Lines         [][2]string
}

func snap(r Result) snapshot {
	s := snapshot{
		TotalDiscount: r.TotalDiscount.StringFixed(2),
		Final:         r.FinalOrderTotal.StringFixed(2),
	}
	for _, it := range r.Items {
		s.Items = append(s.Items, [3]string{
			it.Original.StringFixed(2),
			it.Discount.StringFixed(2),
			it.Final().StringFixed(2),
		})
	}
	for _, l := range r.Lines {
		s.Lines = append(s.Lines, [2]string{l.Reason, l.Amount.StringFixed(2)})
	}
	return s
}

var (
	// 5.40
	hotOatLatte = beverage.Beverage{
		BaseDrink: "Latte", Size: "Tall", Temp: "Hot", PlantMilk: "Oat",
		Shots: 2, Syrups: []string{"Vanilla"},
	}
	// 3.50
	hotGrandeTea = beverage.Beverage{BaseDrink: "Tea", Size: "Grande", Temp: "Hot", IsDecaf: true}
	// 3.00
	hotTallLatte = beverage.Beverage{BaseDrink: "Latte", Size: "Tall", Temp: "Hot"}
	// 3.00
	icedTallTea = beverage.Beverage{BaseDrink: "Tea", Size: "Tall", Temp: "Iced", IsDecaf: true}
)

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		bevs  []beverage.Beverage
		codes []string
		want  snapshot
	}{
		{
			name:  "happy hour applies only to hot drinks",
			bevs:  []beverage.Beverage{hotTallLatte, icedTallTea},
			codes: []string{"HAPPYHOUR"},
			want: snapshot{
				Items:         [][3]string{{"3.00", "0.60", "2.40"}, {"3.00", "0.00", "3.00"}},
				TotalDiscount: "0.60",
				Final:         "5.40",
				Lines:         [][2]string{{ReasonHappyHour, "0.60"}},
			},
		},
		{
			name:  "happy hour then bogo frees cheaper of top two",
			bevs:  []beverage.Beverage{hotOatLatte, hotGrandeTea},
			codes: []string{"HAPPYHOUR", "BOGO"},
			want: snapshot{
				Items:         [][3]string{{"5.40", "1.08", "4.32"}, {"3.50", "3.50", "0.00"}},
				TotalDiscount: "4.58",
				Final:         "4.32",
				Lines:         [][2]string{{ReasonHappyHour, "1.78"}, {ReasonBOGO, "2.80"}},
			},
		},
		{
			name: "bogo frees only one item with three items",
			bevs: []beverage.Beverage{
				{BaseDrink: "Latte", Size: "Venti", Temp: "Hot"},
				{BaseDrink: "Tea", Size: "Grande", Temp: "Iced", IsDecaf: true},
				{BaseDrink: "Chocolate", Size: "Tall", Temp: "Hot"},
			},
			codes: []string{"BOGO"},
			want: snapshot{
				Items:         [][3]string{{"4.00", "0.00", "4.00"}, {"3.50", "3.50", "0.00"}, {"3.00", "0.00", "3.00"}},
				TotalDiscount: "3.50",
				Final:         "7.00",
				Lines:         [][2]string{{ReasonBOGO, "3.50"}},
			},
		},
		{
			name:  "no promotion codes pass through",
			bevs:  []beverage.Beverage{hotTallLatte, hotTallLatte},
			codes: nil,
			want: snapshot{
				Items:         [][3]string{{"3.00", "0.00", "3.00"}, {"3.00", "0.00", "3.00"}},
				TotalDiscount: "0.00",
				Final:         "6.00",
			},
		},
		{
			name:  "happy hour with no hot drink adds no line",
			bevs:  []beverage.Beverage{{BaseDrink: "Latte", Size: "Tall", Temp: "Iced"}},
			codes: []string{"HAPPYHOUR"},
			want: snapshot{
				Items:         [][3]string{{"3.00", "0.00", "3.00"}},
				TotalDiscount: "0.00",
				Final:         "3.00",
			},
		},
		{
			name: "extra hot and blank temperatures are not hot",
			bevs: []beverage.Beverage{
				{Size: "Tall", Temp: "ExtraHot"},
				{Size: "Tall", Temp: ""},
				{Size: "Tall", Temp: "hot"},
			},
			codes: []string{"happyhour"},
			want: snapshot{
				Items:         [][3]string{{"3.00", "0.00", "3.00"}, {"3.00", "0.00", "3.00"}, {"3.00", "0.60", "2.40"}},
				TotalDiscount: "0.60",
				Final:         "8.40",
				Lines:         [][2]string{{ReasonHappyHour, "0.60"}},
			},
		},
		{
			name:  "bogo needs at least two items",
			bevs:  []beverage.Beverage{hotOatLatte},
			codes: []string{"BOGO"},
			want: snapshot{
				Items:         [][3]string{{"5.40", "0.00", "5.40"}},
				TotalDiscount: "0.00",
				Final:         "5.40",
			},
		},
		{
			name:  "bogo tie frees the later item",
			bevs:  []beverage.Beverage{hotTallLatte, icedTallTea},
			codes: []string{"BOGO"},
			want: snapshot{
				Items:         [][3]string{{"3.00", "0.00", "3.00"}, {"3.00", "3.00", "0.00"}},
				TotalDiscount: "3.00",
				Final:         "3.00",
				Lines:         [][2]string{{ReasonBOGO, "3.00"}},
			},
		},
		{
			name: "bogo ranks by price not position",
			bevs: []beverage.Beverage{
				{Size: "Tall"},
				{Size: "Venti"},
				{Size: "Grande"},
				{Size: "Tall", Toppings: []string{"Whip"}},
			},
			codes: []string{"BOGO"},
			want: snapshot{
				Items: [][3]string{
					{"3.00", "0.00", "3.00"},
					{"4.00", "0.00", "4.00"},
					{"3.50", "3.50", "0.00"},
					{"3.25", "0.00", "3.25"},
				},
				TotalDiscount: "3.50",
				Final:         "10.25",
				Lines:         [][2]string{{ReasonBOGO, "3.50"}},
			},
		},
		{
			name:  "codes are trimmed, upper-cased and deduplicated; unknown ignored",
			bevs:  []beverage.Beverage{hotOatLatte, hotGrandeTea},
			codes: []string{" happyhour ", "", "   ", "bogo", "BOGO", "FREECOFFEE"},
			want: snapshot{
				Items:         [][3]string{{"5.40", "1.08", "4.32"}, {"3.50", "3.50", "0.00"}},
				TotalDiscount: "4.58",
				Final:         "4.32",
				Lines:         [][2]string{{ReasonHappyHour, "1.78"}, {ReasonBOGO, "2.80"}},
			},
		},
		{
			name:  "empty order",
			bevs:  nil,
			codes: []string{"HAPPYHOUR", "BOGO"},
			want: snapshot{
				TotalDiscount: "0.00",
				Final:         "0.00",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.bevs, tt.codes)
			assert.Equal(t, tt.want, snap(got))
		})
	}
}

func TestApply_HappyHourRunsBeforeBOGO(t *testing.T) {
	// Without happy hour the top two are 4.00 and 3.80, freeing 3.80.
	// After happy hour the venti drops to 3.20, so the top two become
	// 3.80 and 3.60 and the oat tea is freed instead.
	bevs := []beverage.Beverage{
		{BaseDrink: "Americano", Size: "Venti", Temp: "Hot"},
		{BaseDrink: "Tea", Size: "Grande", Temp: "Iced", Syrups: []string{"Peach"}},
		{BaseDrink: "Tea", Size: "Tall", Temp: "Iced", PlantMilk: "Oat"},
	}

	bogoOnly := Apply(bevs, []string{"BOGO"})
	assertMoney(t, "3.80", bogoOnly.Items[1].Discount)
	assertMoney(t, "0.00", bogoOnly.Items[2].Discount)

	// Code order in the input does not change the phase order.
	both := Apply(bevs, []string{"BOGO", "HAPPYHOUR"})
	assert.Equal(t, snapshot{
		Items:         [][3]string{{"4.00", "0.80", "3.20"}, {"3.80", "0.00", "3.80"}, {"3.60", "3.60", "0.00"}},
		TotalDiscount: "4.40",
		Final:         "7.00",
		Lines:         [][2]string{{ReasonHappyHour, "0.80"}, {ReasonBOGO, "3.60"}},
	}, snap(both))
}

func TestApply_BOGOFreesExactlyOneItem(t *testing.T) {
	bevs := []beverage.Beverage{hotOatLatte, hotGrandeTea, hotTallLatte, icedTallTea, hotOatLatte}

	res := Apply(bevs, []string{"BOGO"})

	freed := 0
	for _, it := range res.Items {
		if it.Final().IsZero() {
			freed++
		}
	}
	assert.Equal(t, 1, freed)
	// The two 5.40 lattes tie at the top; the later one is freed.
	assertMoney(t, "5.40", res.Items[4].Discount)
	assertMoney(t, "5.40", res.TotalDiscount)
}

func TestApply_Deterministic(t *testing.T) {
	bevs := []beverage.Beverage{hotOatLatte, icedTallTea, hotGrandeTea}
	codes := []string{"HAPPYHOUR", "BOGO"}

	first := snap(Apply(bevs, codes))
	for range 10 {
		assert.Equal(t, first, snap(Apply(bevs, codes)))
	}
}

func TestApply_DoesNotModifyInput(t *testing.T) {
	bevs := []beverage.Beverage{hotOatLatte.Clone(), hotGrandeTea.Clone()}
	codes := []string{" bogo ", "happyhour"}

	_ = Apply(bevs, codes)

	assert.Equal(t, []beverage.Beverage{hotOatLatte, hotGrandeTea}, bevs)
	assert.Equal(t, []string{" bogo ", "happyhour"}, codes)
}

func TestApply_TotalsAreConsistent(t *testing.T) {
	bevs := []beverage.Beverage{hotOatLatte, icedTallTea, hotGrandeTea, hotTallLatte}
	res := Apply(bevs, []string{"HAPPYHOUR", "BOGO"})

	require.Len(t, res.Items, len(bevs))

	original := decimal.Zero
	for _, it := range res.Items {
		original = original.Add(it.Original)
	}
	assert.True(t, original.Sub(res.TotalDiscount).Equal(res.FinalOrderTotal),
		"original %s - discount %s != final %s", original, res.TotalDiscount, res.FinalOrderTotal)
}

func TestNormalizeCodes(t *testing.T) {
	got := NormalizeCodes([]string{" bogo", "HappyHour", "", "\t", "BOGO", "other"})
	assert.Equal(t, []Code{BOGO, HappyHour, "OTHER"}, got)

	assert.Empty(t, NormalizeCodes(nil))
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("happyhour"))
	assert.True(t, Known(" BOGO "))
	assert.False(t, Known("HAPPYHRS"))
	assert.False(t, Known(""))
}
