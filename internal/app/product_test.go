package app_test

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/alimikegami/catalog-service/config"
	"github.com/alimikegami/catalog-service/internal/dto"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

var onePixelPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0xda, 0x63, 0x64, 0xf8, 0xcf, 0x50,
	0x0f, 0x00, 0x03, 0x86, 0x01, 0x80, 0x5a, 0x34, 0x7d, 0x6b, 0x00, 0x00,
	0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func (s *IntegrationTestSuite) Test_ProductImage() {
	silk := s.createSubcollection(s.createCollection("Sarees").ID, "Silk")

	withImage := s.createProduct(silk.ID, "Banarasi", &imagePart{ContentType: "image/png", Data: onePixelPNG})
	s.True(withImage.HasImage)
	s.Require().NotNil(withImage.ImageURL)

	withoutImage := s.createProduct(silk.ID, "Kanjivaram", nil)
	s.False(withoutImage.HasImage)
	s.Nil(withoutImage.ImageURL)

	req, err := http.NewRequest(http.MethodGet, s.server.URL+*withImage.ImageURL, nil)
	s.Require().NoError(err)
	resp, body := s.send(req)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("image/png", resp.Header.Get(echo.HeaderContentType))
	s.Equal(config.ImageCacheControl, resp.Header.Get("Cache-Control"))
	s.True(bytes.Equal(onePixelPNG, body))

	resp, body = s.do(http.MethodGet, fmt.Sprintf("/products/%d/image", withoutImage.ID), nil, "")
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("Image not found", s.errorMessage(body))

	resp, _ = s.do(http.MethodGet, "/products/9999/image", nil, "")
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *IntegrationTestSuite) Test_ListingNeverInlinesImages() {
	silk := s.createSubcollection(s.createCollection("Sarees").ID, "Silk")
	s.createProduct(silk.ID, "Mysore", &imagePart{ContentType: "image/png", Data: onePixelPNG})
	s.createProduct(silk.ID, "Banarasi", nil)

	resp, body := s.do(http.MethodGet, fmt.Sprintf("/products/subcollection/%d", silk.ID), nil, "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.NotContains(string(body), `"image":`)

	var list []dto.ProductResponse
	s.decode(body, &list)
	s.Require().Len(list, 2)
	s.Equal("Banarasi", list[0].Name)
	s.False(list[0].HasImage)
	s.Equal("Mysore", list[1].Name)
	s.True(list[1].HasImage)
	s.True(decimal.RequireFromString("1999").Equal(list[1].Price))
}

func (s *IntegrationTestSuite) Test_CreateProductRejections() {
	silk := s.createSubcollection(s.createCollection("Sarees").ID, "Silk")
	fields := map[string]string{
		"subcollection_id": fmt.Sprint(silk.ID),
		"name":             "Banarasi",
		"price":            "8999",
	}

	type TestCase struct {
		Name           string
		Fields         map[string]string
		Image          *imagePart
		Token          string
		ExpectedStatus int
	}

	testCases := []TestCase{
		{Name: "No token", Fields: fields, Token: "", ExpectedStatus: http.StatusUnauthorized},
		{Name: "Not an image", Fields: fields, Image: &imagePart{ContentType: "application/pdf", Data: []byte("%PDF")}, Token: s.token, ExpectedStatus: http.StatusBadRequest},
		{Name: "Too large", Fields: fields, Image: &imagePart{ContentType: "image/png", Data: make([]byte, config.MaxImageSize+1)}, Token: s.token, ExpectedStatus: http.StatusRequestEntityTooLarge},
		{Name: "Missing price", Fields: map[string]string{"subcollection_id": fmt.Sprint(silk.ID), "name": "x"}, Token: s.token, ExpectedStatus: http.StatusBadRequest},
		{Name: "Negative price", Fields: map[string]string{"subcollection_id": fmt.Sprint(silk.ID), "name": "x", "price": "-5"}, Token: s.token, ExpectedStatus: http.StatusBadRequest},
		{Name: "Unknown subcollection", Fields: map[string]string{"subcollection_id": "9999", "name": "x", "price": "5"}, Token: s.token, ExpectedStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			resp, body := s.postProduct(tc.Fields, tc.Image, tc.Token)
			s.Equal(tc.ExpectedStatus, resp.StatusCode, string(body))
		})
	}

	resp, body := s.do(http.MethodGet, fmt.Sprintf("/products/subcollection/%d", silk.ID), nil, "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var list []dto.ProductResponse
	s.decode(body, &list)
	s.Empty(list)
}

func (s *IntegrationTestSuite) Test_UpdateAndDeleteProduct() {
	silk := s.createSubcollection(s.createCollection("Sarees").ID, "Silk")
	product := s.createProduct(silk.ID, "Banarasi", nil)

	resp, body := s.do(http.MethodPut, fmt.Sprintf("/products/%d", product.ID), map[string]interface{}{"price": "2499.99"}, s.token)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))
	var updated dto.ProductResponse
	s.decode(body, &updated)
	s.Equal("Banarasi", updated.Name)
	s.True(decimal.RequireFromString("2499.99").Equal(updated.Price))

	resp, _ = s.do(http.MethodDelete, fmt.Sprintf("/products/%d", product.ID), nil, s.token)
	s.Equal(http.StatusOK, resp.StatusCode)

	resp, _ = s.do(http.MethodGet, fmt.Sprintf("/products/%d", product.ID), nil, "")
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *IntegrationTestSuite) Test_AllSubcollections() {
	sarees := s.createCollection("Sarees")
	kurtis := s.createCollection("Kurtis")
	s.createSubcollection(sarees.ID, "Silk")
	s.createSubcollection(kurtis.ID, "Party Wear")
	s.createSubcollection(kurtis.ID, "Casual")

	resp, body := s.do(http.MethodGet, "/products/subcollections/all", nil, "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var list []dto.SubcollectionResponse
	s.decode(body, &list)
	s.Require().Len(list, 3)
	s.Equal([]string{"Kurtis/Casual", "Kurtis/Party Wear", "Sarees/Silk"}, []string{
		list[0].CollectionName + "/" + list[0].Name,
		list[1].CollectionName + "/" + list[1].Name,
		list[2].CollectionName + "/" + list[2].Name,
	})
}
