package menu

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/arthur-debert/unitconv/pkg/config"
	"github.com/arthur-debert/unitconv/pkg/output"
	"github.com/arthur-debert/unitconv/pkg/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mainMenu = "\nUnit Converter\n" +
	"1. Convert Temperature\n" +
	"2. Convert Distance\n" +
	"3. Convert Weight\n" +
	"4. Convert Volume\n" +
	"5. Exit\n" +
	"Choose an option: "

func runShell(t *testing.T, input string) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	shell := New(
		units.New(),
		strings.NewReader(input),
		output.NewRenderer(&out, config.ColorNever),
		output.NewRenderer(&errOut, config.ColorNever),
	)
	require.NoError(t, shell.Run(context.Background()))
	return out.String(), errOut.String()
}

func TestShell_ExitImmediately(t *testing.T) {
	out, errOut := runShell(t, "5\n")

	assert.Equal(t, mainMenu+"Exiting...\n", out)
	assert.Empty(t, errOut)
}

func TestShell_Conversions(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantOut    string
		wantErrOut string
	}{
		{
			name:    "celsius to fahrenheit",
			input:   "1\n100\n1\n5\n",
			wantOut: "Converted value: 212.00\n",
		},
		{
			name:    "kilometers to miles",
			input:   "2\n10\n1\n5\n",
			wantOut: "Converted value: 6.21\n",
		},
		{
			name:    "grams to ounces",
			input:   "3\n100\n3\n5\n",
			wantOut: "Converted value: 3.53\n",
		},
		{
			name:    "liters to gallons",
			input:   "4\n1\n1\n5\n",
			wantOut: "Converted value: 0.26\n",
		},
		{
			name:       "below absolute zero",
			input:      "1\n-300\n3\n5\n",
			wantErrOut: "Error: Temperature value below absolute zero is not valid.\n",
		},
		{
			name:       "negative distance",
			input:      "2\n-1\n1\n5\n",
			wantErrOut: "Error: Negative distance values are not valid.\n",
		},
		{
			name:       "non numeric value",
			input:      "1\nabc\n5\n",
			wantErrOut: "Invalid input. Please enter a numeric value.\n",
		},
		{
			name:       "choice out of range",
			input:      "2\n10\n9\n5\n",
			wantErrOut: "Invalid conversion selection.\n",
		},
		{
			name:       "non numeric choice",
			input:      "2\n10\nx\n5\n",
			wantErrOut: "Invalid conversion selection.\n",
		},
		{
			name:       "menu option out of range",
			input:      "7\n5\n",
			wantErrOut: "Invalid option. Please try again.\n",
		},
		{
			name:       "non numeric menu option",
			input:      "hello\n5\n",
			wantErrOut: "Invalid input. Please enter a number corresponding to the menu option.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, errOut := runShell(t, tt.input)

			if tt.wantOut != "" {
				assert.Contains(t, out, tt.wantOut)
			}
			assert.Equal(t, tt.wantErrOut, errOut)
			assert.True(t, strings.HasSuffix(out, "Exiting...\n"))
		})
	}
}

func TestShell_ConversionListing(t *testing.T) {
	out, _ := runShell(t, "4\n1\n4\n5\n")

	assert.Contains(t, out, "Enter volume value: Choose conversion type:\n"+
		"1. LitersToGallons\n"+
		"2. GallonsToLiters\n"+
		"3. MillilitersToFluidOunces\n"+
		"4. FluidOuncesToMilliliters\n"+
		"Enter choice: ")
}

func TestShell_InvalidTokenDiscardsLine(t *testing.T) {
	// the rest of the bad line must not be read as the next option
	out, errOut := runShell(t, "oops 1 2 3\n5\n")

	assert.Equal(t, "Invalid input. Please enter a number corresponding to the menu option.\n", errOut)
	assert.Equal(t, mainMenu+mainMenu+"Exiting...\n", out)
}

func TestShell_TokensOnOneLine(t *testing.T) {
	out, errOut := runShell(t, "1 0 3 5")

	assert.Empty(t, errOut)
	assert.Contains(t, out, "Converted value: 273.15\n")
	assert.True(t, strings.HasSuffix(out, "Exiting...\n"))
}

func TestShell_EndOfInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"after value prompt", "1\n"},
		{"after choice prompt", "1\n20\n"},
		{"after a conversion", "1\n20\n1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := runShell(t, tt.input)
			assert.NotContains(t, out, "Exiting...")
		})
	}
}

func TestShell_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	r := output.NewRenderer(&out, config.ColorNever)
	shell := New(units.New(), strings.NewReader("5\n"), r, r)

	err := shell.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
