package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/attidev/storefront/internal/catalog"
)

// addForm is the new-product dialog: title, price, brand and category are
// required, rating and stock optional.
type addForm struct {
	inputs []textinput.Model
	labels []string
	focus  int
	errMsg string
}

func newAddForm() addForm {
	labels := []string{"Title", "Price", "Brand", "Category", "Rating", "Stock"}
	inputs := make([]textinput.Model, len(labels))
	for i, label := range labels {
		ti := textinput.New()
		ti.Placeholder = strings.ToLower(label)
		ti.CharLimit = 100
		inputs[i] = ti
	}
	inputs[0].Focus()
	return addForm{inputs: inputs, labels: labels}
}

func (f *addForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.errMsg = ""
	f.inputs[0].Focus()
}

func (f *addForm) next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *addForm) prev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *addForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// draft parses the form into a Draft. Numeric fields that do not parse are
// reported the same way a failed validation rule would be.
func (f *addForm) draft() (catalog.Draft, error) {
	fields := make(map[string]string)
	draft := catalog.Draft{
		Title:    strings.TrimSpace(f.inputs[0].Value()),
		Brand:    strings.TrimSpace(f.inputs[2].Value()),
		Category: strings.TrimSpace(f.inputs[3].Value()),
	}

	if raw := strings.TrimSpace(f.inputs[1].Value()); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fields["Price"] = "number"
		} else {
			draft.Price = price
		}
	}
	if raw := strings.TrimSpace(f.inputs[4].Value()); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fields["Rating"] = "number"
		} else {
			draft.Rating = rating
		}
	}
	if raw := strings.TrimSpace(f.inputs[5].Value()); raw != "" {
		stock, err := strconv.Atoi(raw)
		if err != nil {
			fields["Stock"] = "number"
		} else {
			draft.Stock = stock
		}
	}

	if len(fields) > 0 {
		return draft, &catalog.DraftValidationError{Fields: fields}
	}
	if err := draft.Validate(); err != nil {
		return draft, err
	}
	return draft, nil
}
