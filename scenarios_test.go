package bignum

import (
	"strings"
	"testing"
)

// These mirror the literal end-to-end scenarios called out for this
// kernel: specific values chosen to exercise multiplication, hex
// parsing, truncated division, large shifts, FFT/schoolbook agreement,
// and base-256 conversion all at once.

func TestScenarioDecimalMultiplyByTwo(t *testing.T) {
	a, err := Parse("123456789012345678901234567890", 10)
	if err != nil {
		t.Fatal(err)
	}
	want, err := Parse("246913578024691357802469135780", 10)
	if err != nil {
		t.Fatal(err)
	}
	requireEqual(t, a.Mul(From(int64(2))), want, "decimal * 2")
}

func TestScenarioHexIncrementAndFormat(t *testing.T) {
	v, err := Parse("ff", 16)
	if err != nil {
		t.Fatal(err)
	}
	sum := v.Add(One())
	want, err := Parse("100", 16)
	if err != nil {
		t.Fatal(err)
	}
	requireEqual(t, sum, want, "0xff + 1")

	got, err := sum.Text(16, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got != "100" {
		t.Fatalf("Text(16,1) = %q, want %q", got, "100")
	}
}

func TestScenarioTruncatedDivisionSignCombinations(t *testing.T) {
	q, r, err := From(int64(-7)).DivMod(From(int64(2)))
	if err != nil {
		t.Fatal(err)
	}
	requireEqual(t, q, From(int64(-3)), "-7 / 2 quotient")
	requireEqual(t, r, From(int64(-1)), "-7 % 2 remainder")

	q, r, err = From(int64(7)).DivMod(From(int64(-2)))
	if err != nil {
		t.Fatal(err)
	}
	requireEqual(t, q, From(int64(-3)), "7 / -2 quotient")
	requireEqual(t, r, From(int64(1)), "7 % -2 remainder")
}

func TestScenarioLargeShiftAndBitLen(t *testing.T) {
	got := One().Lsh(100)
	want, err := Parse("10000000000000000000000000", 16)
	if err != nil {
		t.Fatal(err)
	}
	requireEqual(t, got, want, "1 << 100")
	if bl := got.BitLen(); bl != 101 {
		t.Fatalf("BitLen(1<<100) = %d, want 101", bl)
	}
}

func TestScenarioFFTMatchesSchoolbookOnRepeatedNines(t *testing.T) {
	nines := strings.Repeat("9", 200)
	a, err := Parse(nines, 10)
	if err != nil {
		t.Fatal(err)
	}
	school := mulSchoolbook(a, a)
	fft := mulFFTForced(a, a)
	requireEqual(t, fft, school, "fft(9...9 * 9...9) vs schoolbook")

	got, err := fft.Text(10, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 400 {
		t.Fatalf("product has %d digits, want 400", len(got))
	}
	if !strings.HasPrefix(got, "9999") || !strings.HasSuffix(got, "0001") {
		t.Fatalf("product = %q, want prefix 9999.../suffix .../0001", got)
	}
}

func TestScenarioBase256RoundTrip(t *testing.T) {
	v, err := ParseBytes([]byte{0x01, 0x00, 0x00}, 256)
	if err != nil {
		t.Fatal(err)
	}
	requireEqual(t, v, From(int64(65536)), "parse_base256([0x01,0x00,0x00])")

	got := v.Bytes256(3)
	want := []byte{0x01, 0x00, 0x00}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Fatalf("Bytes256(3) = % x, want % x", got, want)
	}
}
