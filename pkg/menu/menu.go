package menu

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/arthur-debert/unitconv/pkg/errors"
	"github.com/arthur-debert/unitconv/pkg/logging"
	"github.com/arthur-debert/unitconv/pkg/output"
	"github.com/arthur-debert/unitconv/pkg/units"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	MsgTitle            = "Unit Converter"
	MsgChooseOption     = "Choose an option: "
	MsgEnterValue       = "Enter %s value: "
	MsgChooseConversion = "Choose conversion type:"
	MsgEnterChoice      = "Enter choice: "
	MsgConverted        = "Converted value: %.2f"
	MsgExiting          = "Exiting..."
	MsgErrorPrefix      = "Error: "

	MsgInvalidOption    = "Invalid option. Please try again."
	MsgInvalidMenuInput = "Invalid input. Please enter a number corresponding to the menu option."
	MsgInvalidValue     = "Invalid input. Please enter a numeric value."
	MsgInvalidSelection = "Invalid conversion selection."
)

// Shell is the interactive menu loop
type Shell struct {
	conv   *units.Converter
	in     *tokenReader
	out    *output.Renderer
	errOut *output.Renderer
	title  cases.Caser
	logger zerolog.Logger
}

// New creates a shell reading from in. Prompts and results go to out,
// input and conversion errors to errOut.
func New(conv *units.Converter, in io.Reader, out, errOut *output.Renderer) *Shell {
	return &Shell{
		conv:   conv,
		in:     newTokenReader(in),
		out:    out,
		errOut: errOut,
		title:  cases.Title(language.English),
		logger: logging.GetLogger("menu"),
	}
}

// exitOption is the menu number after the last category
func exitOption() int {
	return len(units.Categories) + 1
}

// Run shows the menu until the user exits, input ends or ctx is cancelled.
// End of input is not an error.
func (s *Shell) Run(ctx context.Context) error {
	done := logging.LogOperationStart(s.logger, "menu")
	defer done()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.showMenu()
		token, err := s.in.next()
		if err == io.EOF {
			s.logger.Debug().Msg("Input closed, leaving menu")
			return nil
		}
		if err != nil {
			return err
		}

		choice, err := strconv.Atoi(token)
		if err != nil {
			s.in.discardLine()
			s.errOut.Println(output.StyleError, MsgInvalidMenuInput)
			continue
		}

		switch {
		case choice == exitOption():
			s.out.Println(output.StyleMuted, MsgExiting)
			return nil
		case choice >= 1 && choice < exitOption():
			if err := s.convertCategory(units.Categories[choice-1]); err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
		default:
			s.errOut.Println(output.StyleError, MsgInvalidOption)
		}
	}
}

func (s *Shell) showMenu() {
	fmt.Fprintln(s.out.Writer())
	s.out.Println(output.StyleTitle, MsgTitle)
	for i, cat := range units.Categories {
		s.out.Println(output.StyleOption, fmt.Sprintf("%d. Convert %s", i+1, s.title.String(cat.String())))
	}
	s.out.Println(output.StyleOption, fmt.Sprintf("%d. Exit", exitOption()))
	s.out.Printf(output.StylePrompt, MsgChooseOption)
}

// convertCategory runs one value/choice/convert round for cat. Only read
// failures are returned.
func (s *Shell) convertCategory(cat units.Category) error {
	s.out.Printf(output.StylePrompt, MsgEnterValue, cat)
	token, err := s.in.next()
	if err != nil {
		return err
	}
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		s.in.discardLine()
		s.errOut.Println(output.StyleError, MsgInvalidValue)
		return nil
	}

	entries := s.conv.ByCategory(cat)
	s.out.Println(output.StylePrompt, MsgChooseConversion)
	for i, e := range entries {
		s.out.Println(output.StyleOption, fmt.Sprintf("%d. %s", i+1, e.Name()))
	}
	s.out.Printf(output.StylePrompt, MsgEnterChoice)

	token, err = s.in.next()
	if err != nil {
		return err
	}
	choice, err := strconv.Atoi(token)
	if err != nil {
		s.in.discardLine()
		choice = 0
	}
	if choice < 1 || choice > len(entries) {
		s.errOut.Println(output.StyleError, MsgInvalidSelection)
		return nil
	}

	name := entries[choice-1].Name()
	s.logger.Debug().
		Str("conversion", name).
		Float64("value", value).
		Msg("Menu conversion requested")

	result, err := s.conv.Convert(name, value)
	if err != nil {
		s.logger.Debug().Err(err).Str("conversion", name).Msg("Conversion rejected")
		s.errOut.Println(output.StyleError, MsgErrorPrefix+errors.Message(err))
		return nil
	}
	s.out.Println(output.StyleResult, fmt.Sprintf(MsgConverted, result))
	return nil
}
