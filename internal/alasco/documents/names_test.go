package documents

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"DropsPunctuation", "ACME Corp.", "ACME_Corp"},
		{"DropsSlashes", "123/456", "123456"},
		{"KeepsAllowedChars", "Unit-7 (east)", "Unit-7_(east)"},
		{"SpacesBecomeUnderscores", "Facade works phase 2", "Facade_works_phase_2"},
		{"DropsUmlauts", "Müller & Söhne", "Mller__Shne"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanName(tt.in))
		})
	}
}

func TestDocumentNames(t *testing.T) {
	t.Run("Contract", func(t *testing.T) {
		got := ContractDocumentName("ACME Corp.", "123/456", "CONTRACT")
		assert.Equal(t, "ACME_Corp_123456_CONTRACT.pdf", got)
	})

	t.Run("Invoice", func(t *testing.T) {
		got := InvoiceDocumentName("ACME Corp.", "123/456", "INV-100", "INVOICE")
		assert.Equal(t, "ACME_Corp_123456_INV-100_INVOICE.pdf", got)
	})

	t.Run("ChangeOrder", func(t *testing.T) {
		got := ChangeOrderDocumentName("ACME Corp.", "123/456", "CHANGE_ORDER", "CO-7")
		assert.Equal(t, "ACME_Corp_123456_CHANGE_ORDER_CO-7.pdf", got)
	})

	t.Run("SameInputSameName", func(t *testing.T) {
		first := ContractDocumentName("Builder GmbH", "001", "ATTACHMENT")
		second := ContractDocumentName("Builder GmbH", "001", "ATTACHMENT")
		assert.Equal(t, first, second)
	})
}
