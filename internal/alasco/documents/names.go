package documents

import (
	"fmt"
	"regexp"
	"strings"
)

// Characters allowed in derived file names. Everything else is stripped
// before spaces are mapped to underscores, so the same consolidated row and
// document type always derive the same name.
var disallowedNameChars = regexp.MustCompile(`[^A-Za-z0-9_\-() ]+`)

func CleanName(s string) string {
	cleaned := disallowedNameChars.ReplaceAllString(s, "")
	return strings.ReplaceAll(cleaned, " ", "_")
}

// ContractDocumentName derives {contractor}_{number}_{type}.pdf.
func ContractDocumentName(contractorName, contractNumber, documentType string) string {
	return fmt.Sprintf("%s_%s_%s.pdf", CleanName(contractorName), CleanName(contractNumber), documentType)
}

// InvoiceDocumentName derives {contractor}_{number}_{invoice}_{type}.pdf.
func InvoiceDocumentName(contractorName, contractNumber, invoiceNumber, documentType string) string {
	return fmt.Sprintf("%s_%s_%s_%s.pdf", CleanName(contractorName), CleanName(contractNumber), CleanName(invoiceNumber), documentType)
}

// ChangeOrderDocumentName derives {contractor}_{number}_{type}_{identifier}.pdf.
func ChangeOrderDocumentName(contractorName, contractNumber, documentType, identifier string) string {
	return fmt.Sprintf("%s_%s_%s_%s.pdf", CleanName(contractorName), CleanName(contractNumber), documentType, CleanName(identifier))
}
