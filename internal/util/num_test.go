package util

import "testing"

func TestParsePrice(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		wantOK bool
		want   string
	}{
		{name: "plain", input: "19.95", wantOK: true, want: "19.95"},
		// decimal.String trims trailing zeros; callers that need the
		// listed price text must carry the raw cell through instead.
		{name: "whitespace", input: " 12.00 ", wantOK: true, want: "12"},
		{name: "zero", input: "0", wantOK: true, want: "0"},
		{name: "empty", input: "", wantOK: false},
		{name: "garbage", input: "n/a", wantOK: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, ok := ParsePrice(tc.input)
			if ok != tc.wantOK {
				t.Fatalf("ok=%v want %v", ok, tc.wantOK)
			}
			if ok && d.String() != tc.want {
				t.Fatalf("got %s want %s", d.String(), tc.want)
			}
		})
	}
}

func TestStockClamping(t *testing.T) {
	cases := []struct {
		raw      string
		qty      int
		inStock  int
	}{
		{raw: "5", qty: 5, inStock: 1},
		{raw: "1", qty: 1, inStock: 1},
		{raw: "0", qty: 0, inStock: 0},
		{raw: "-3", qty: 0, inStock: 0},
		{raw: "", qty: 0, inStock: 0},
		{raw: "many", qty: 0, inStock: 0},
	}

	for _, tc := range cases {
		stock := ParseStock(tc.raw)
		if got := ClampQty(stock); got != tc.qty {
			t.Fatalf("ClampQty(%q) = %d want %d", tc.raw, got, tc.qty)
		}
		if got := StockFlag(stock); got != tc.inStock {
			t.Fatalf("StockFlag(%q) = %d want %d", tc.raw, got, tc.inStock)
		}
	}
}
