package documents

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"os"

	"github.com/sylvainHellin/Alasco/internal/alasco"
	"github.com/sylvainHellin/Alasco/internal/logger"
)

// Accepted document types, fixed per resource kind by the upstream API.
var (
	ContractDocumentTypes = []string{"CONTRACT", "ATTACHMENT"}

	ChangeOrderDocumentTypes = []string{
		"ATTACHMENT", "AUDITED_CHANGE_ORDER", "CHANGE_ORDER", "CHANGE_ORDER_OFFER",
		"COVERSHEET_EXTERNAL", "EXTERNAL_CORRESPONDENCE", "INTERNAL_CORRESPONDENCE",
		"OTHER", "PLANS", "PROTOCOL", "VALUATIONS",
	}

	InvoiceDocumentTypes = []string{
		"ATTACHMENT", "AUDITED_INVOICE", "COVERSHEET_EXTERNAL", "EXTERNAL_CORRESPONDENCE",
		"INTERNAL_CORRESPONDENCE", "INVOICE", "OTHER", "PAYMENT_CERTIFICATE",
		"PLANS", "PROTOCOL", "REVISED_INVOICE", "VALUATIONS",
	}
)

// ContractUpload attaches a document to a contract.
type ContractUpload struct {
	ContractID   string
	DocumentType string
	FileName     string
	FilePath     string
}

func (r ContractUpload) Validate() error {
	if err := requireFields(r.DocumentType, r.FilePath, r.FileName, r.ContractID, "contract_id"); err != nil {
		return err
	}
	return requireDocumentType(r.DocumentType, ContractDocumentTypes)
}

// ChangeOrderUpload attaches a document to a change order.
type ChangeOrderUpload struct {
	ChangeOrderID string
	DocumentType  string
	FileName      string
	FilePath      string
}

func (r ChangeOrderUpload) Validate() error {
	if err := requireFields(r.DocumentType, r.FilePath, r.FileName, r.ChangeOrderID, "change_order_id"); err != nil {
		return err
	}
	return requireDocumentType(r.DocumentType, ChangeOrderDocumentTypes)
}

// InvoiceUpload attaches a document to an invoice.
type InvoiceUpload struct {
	InvoiceID    string
	DocumentType string
	FileName     string
	FilePath     string
}

func (r InvoiceUpload) Validate() error {
	if err := requireFields(r.DocumentType, r.FilePath, r.FileName, r.InvoiceID, "invoice_id"); err != nil {
		return err
	}
	return requireDocumentType(r.DocumentType, InvoiceDocumentTypes)
}

// Uploader posts document attachments as multipart form bodies with a
// document_type field and an upload file part. Requests are validated in
// full before any network call.
type Uploader struct {
	client *alasco.Client
	log    *logger.Logger
}

func NewUploader(client *alasco.Client, appLogger *logger.Logger) *Uploader {
	return &Uploader{client: client, log: appLogger}
}

func (u *Uploader) UploadContract(ctx context.Context, req ContractUpload) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return u.upload(ctx, u.client.ContractDocumentsURL(req.ContractID), req.DocumentType, req.FileName, req.FilePath)
}

func (u *Uploader) UploadChangeOrder(ctx context.Context, req ChangeOrderUpload) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return u.upload(ctx, u.client.ChangeOrderDocumentsURL(req.ChangeOrderID), req.DocumentType, req.FileName, req.FilePath)
}

func (u *Uploader) UploadInvoice(ctx context.Context, req InvoiceUpload) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return u.upload(ctx, u.client.InvoiceDocumentsURL(req.InvoiceID), req.DocumentType, req.FileName, req.FilePath)
}

func (u *Uploader) upload(ctx context.Context, url, documentType, fileName, filePath string) error {
	const component = "DocumentUploader"

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading upload file %s: %v", filePath, err)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("document_type", documentType); err != nil {
		return fmt.Errorf("preparing multipart body: %v", err)
	}
	part, err := writer.CreateFormFile("upload", fileName)
	if err != nil {
		return fmt.Errorf("preparing multipart body: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		return fmt.Errorf("preparing multipart body: %v", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("preparing multipart body: %v", err)
	}

	u.log.Debug(component, "Uploading document: url=%s type=%s file=%s size=%d bytes", url, documentType, fileName, len(content))

	if err := u.client.UploadMultipart(ctx, url, writer.FormDataContentType(), &body); err != nil {
		return err
	}

	u.log.Info(component, "Document uploaded: url=%s file=%s", url, fileName)
	return nil
}

func requireFields(documentType, filePath, fileName, resourceID, resourceField string) error {
	if documentType == "" || filePath == "" || fileName == "" || resourceID == "" {
		return fmt.Errorf("missing required parameters: provide document_type, file_path, file_name and %s", resourceField)
	}
	return nil
}

func requireDocumentType(documentType string, accepted []string) error {
	for _, t := range accepted {
		if t == documentType {
			return nil
		}
	}
	return fmt.Errorf("document type %q does not match any of the acceptable types", documentType)
}
