package handler

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"secondhand/market-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const maxUploadMemory = 32 << 20

type ProductHandler struct {
	products service.ProductService
	logger   *logrus.Logger
}

func NewProductHandler(products service.ProductService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		logger:   logger,
	}
}

func (h *ProductHandler) List(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxUploadMemory); err != nil {
		badRequest(c, "Invalid form data!")
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		badRequest(c, "Invalid price!")
		return
	}
	purchasingDate, err := parseDate(c.PostForm("purchasingDate"))
	if err != nil {
		badRequest(c, "Invalid purchasing date!")
		return
	}

	var headers []*multipart.FileHeader
	if form := c.Request.MultipartForm; form != nil {
		headers = form.File["images"]
	}

	uploads := make([]service.Upload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			writeError(c, h.logger, err)
			return
		}
		defer f.Close()
		uploads = append(uploads, service.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Body:        f,
		})
	}

	product, err := h.products.Create(c.Request.Context(), service.NewProductInput{
		OwnerID:        currentUser(c).ID,
		Name:           c.PostForm("name"),
		Description:    c.PostForm("description"),
		Category:       c.PostForm("category"),
		Price:          price,
		PurchasingDate: purchasingDate,
		ProvinceName:   c.PostForm("provinceName"),
		DistrictName:   c.PostForm("districtName"),
		Images:         uploads,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": product.ID, "product": newProductView(product)})
}

func (h *ProductHandler) Detail(c *gin.Context) {
	product, err := h.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": newProductView(product)})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), currentUser(c).ID, c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product removed successfully"})
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}
