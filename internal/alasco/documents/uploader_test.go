package documents

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContractUploadValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		req := ContractUpload{
			ContractID:   "c1",
			DocumentType: "CONTRACT",
			FileName:     "contract.pdf",
			FilePath:     "/tmp/contract.pdf",
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("MissingFields", func(t *testing.T) {
		err := ContractUpload{DocumentType: "CONTRACT"}.Validate()
		assert.ErrorContains(t, err, "missing required parameters")
		assert.ErrorContains(t, err, "contract_id")
	})

	t.Run("UnknownDocumentType", func(t *testing.T) {
		req := ContractUpload{
			ContractID:   "c1",
			DocumentType: "INVOICE",
			FileName:     "contract.pdf",
			FilePath:     "/tmp/contract.pdf",
		}
		assert.ErrorContains(t, req.Validate(), "does not match any of the acceptable types")
	})
}

func TestChangeOrderUploadValidate(t *testing.T) {
	req := ChangeOrderUpload{
		ChangeOrderID: "co1",
		DocumentType:  "CHANGE_ORDER_OFFER",
		FileName:      "offer.pdf",
		FilePath:      "/tmp/offer.pdf",
	}
	assert.NoError(t, req.Validate())

	req.DocumentType = "CONTRACT"
	assert.ErrorContains(t, req.Validate(), "does not match any of the acceptable types")
}

func TestInvoiceUploadValidate(t *testing.T) {
	req := InvoiceUpload{
		InvoiceID:    "i1",
		DocumentType: "PAYMENT_CERTIFICATE",
		FileName:     "cert.pdf",
		FilePath:     "/tmp/cert.pdf",
	}
	assert.NoError(t, req.Validate())

	req.InvoiceID = ""
	assert.ErrorContains(t, req.Validate(), "invoice_id")
}
