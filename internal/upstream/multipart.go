package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

type multipartFile struct {
	field    string
	filename string
	content  io.Reader
}

type multipartForm struct {
	fields map[string]string
	file   *multipartFile
}

func (c *Client) doMultipart(ctx context.Context, method, path string, form multipartForm, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for field, value := range form.fields {
		if err := writer.WriteField(field, value); err != nil {
			return fmt.Errorf("writer.WriteField -> %w", err)
		}
	}

	if form.file != nil {
		part, err := writer.CreateFormFile(form.file.field, form.file.filename)
		if err != nil {
			return fmt.Errorf("writer.CreateFormFile -> %w", err)
		}
		if _, err = io.Copy(part, form.file.content); err != nil {
			return fmt.Errorf("io.Copy -> %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("writer.Close -> %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, nil), &buf)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	raw, err := c.send(req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}

	return decodeBody(raw, out)
}
