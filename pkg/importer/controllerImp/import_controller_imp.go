package controllerImp

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"wms/pkg/httpx"
	"wms/pkg/importer"
	svc "wms/pkg/importer/service"
	"wms/pkg/middleware"
)

type ImportCtrl struct {
	s        svc.ImportService
	maxBytes int64
	now      func() time.Time
}

func New(s svc.ImportService, maxFileMB int) *ImportCtrl {
	return &ImportCtrl{s: s, maxBytes: int64(maxFileMB) << 20, now: time.Now}
}

type importResponse struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Warnings []string `json:"warnings,omitempty"`
	Data     any      `json:"data,omitempty"`
}

func (h *ImportCtrl) ImportSchedules(c echo.Context) error {
	fh, err := c.FormFile("excelFile")
	if err != nil || fh.Size == 0 {
		return httpx.Fail(c, http.StatusBadRequest, "No file uploaded.")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".xlsx" && ext != ".xlsm" {
		return httpx.Fail(c, http.StatusBadRequest, "Only .xlsx or .xlsm files are supported.")
	}
	if h.maxBytes > 0 && fh.Size > h.maxBytes {
		return httpx.Fail(c, http.StatusRequestEntityTooLarge, fmt.Sprintf("File exceeds %d MB.", h.maxBytes>>20))
	}
	src, err := fh.Open()
	if err != nil {
		return httpx.Fail(c, http.StatusBadRequest, "Error processing file: "+err.Error())
	}
	defer src.Close()

	res := h.s.ImportSchedules(c.Request().Context(), src)
	logrus.WithFields(logrus.Fields{
		"file":     fh.Filename,
		"operator": middleware.OperatorFrom(c),
		"success":  res.Success(),
	}).Info("schedule workbook uploaded")
	return c.JSON(http.StatusOK, importResponse{
		Success:  res.Success(),
		Message:  res.Message(),
		Warnings: res.Warnings,
		Data:     res,
	})
}

func (h *ImportCtrl) DownloadTemplate(c echo.Context) error {
	codes := splitCodes(c.QueryParam("customerCodes"))
	tpl, err := h.s.Template(c.Request().Context(), codes, h.now())
	if errors.Is(err, importer.ErrNoCustomers) {
		return httpx.Fail(c, http.StatusNotFound, "No valid customers found.")
	}
	if err != nil {
		return httpx.FromError(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", tpl.FileName))
	return c.Blob(http.StatusOK, tpl.ContentType, tpl.Body)
}

// DefaultTemplate redirects to the blank sample template.
func (h *ImportCtrl) DefaultTemplate(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/api/import/template?customerCodes=")
}

func splitCodes(s string) []string {
	var out []string
	seen := map[string]bool{}
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
