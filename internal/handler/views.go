package handler

import (
	"time"

	"secondhand/market-service/internal/models"

	"github.com/gin-gonic/gin"
)

func userView(u *models.User) gin.H {
	view := gin.H{
		"id":            u.ID,
		"email":         u.Email,
		"name":          u.Name,
		"verified":      u.Verified,
		"address":       u.Address,
		"isAdmin":       u.IsAdmin,
		"isActive":      u.IsActive,
		"premiumStatus": u.Premium,
	}
	if u.Avatar != nil {
		view["avatar"] = u.Avatar.URL
	}
	return view
}

type productView struct {
	ID             string         `json:"id"`
	Owner          string         `json:"owner"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Price          float64        `json:"price"`
	Category       string         `json:"category"`
	Address        string         `json:"address"`
	PurchasingDate time.Time      `json:"purchasingDate"`
	Images         []models.Image `json:"images"`
	Thumbnail      string         `json:"thumbnail,omitempty"`
	IsActive       bool           `json:"isActive"`
	IsSold         bool           `json:"isSold"`
	CreatedAt      time.Time      `json:"createdAt"`
}

func newProductView(p *models.Product) productView {
	images := p.Images
	if images == nil {
		images = []models.Image{}
	}
	return productView{
		ID:             p.ID,
		Owner:          p.OwnerID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		Category:       p.Category,
		Address:        p.Address,
		PurchasingDate: p.PurchasingDate,
		Images:         images,
		Thumbnail:      p.Thumbnail,
		IsActive:       p.IsActive,
		IsSold:         p.IsSold,
		CreatedAt:      p.CreatedAt,
	}
}

func productViews(products []*models.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p))
	}
	return views
}
