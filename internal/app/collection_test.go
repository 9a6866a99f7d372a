package app_test

import (
	"fmt"
	"net/http"

	"github.com/alimikegami/catalog-service/internal/dto"
)

func (s *IntegrationTestSuite) listCollectionIDs() []int64 {
	resp, body := s.do(http.MethodGet, "/collections", nil, "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var list []dto.CollectionResponse
	s.decode(body, &list)

	ids := []int64{}
	for _, c := range list {
		ids = append(ids, c.ID)
	}
	return ids
}

func (s *IntegrationTestSuite) Test_ReorderCollections() {
	a := s.createCollection("Sarees").ID
	b := s.createCollection("Kurtis").ID
	c := s.createCollection("Salwar Suits").ID

	for _, ordered := range [][]int64{{c, a, b}, {b, c, a}, {a, b, c}} {
		resp, body := s.do(http.MethodPut, "/collections/reorder", dto.ReorderRequest{OrderedIDs: ordered}, s.token)
		s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))
		s.Equal(ordered, s.listCollectionIDs())
	}

	resp, body := s.do(http.MethodPut, "/collections/reorder", map[string][]int64{"orderedIds": {a, b}}, s.token)
	s.Equal(http.StatusBadRequest, resp.StatusCode, string(body))
	s.Equal([]int64{a, b, c}, s.listCollectionIDs())

	resp, _ = s.do(http.MethodPut, "/collections/reorder", dto.ReorderRequest{OrderedIDs: []int64{c, b, a}}, "")
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *IntegrationTestSuite) Test_DuplicateNamesConflict() {
	sarees := s.createCollection("Sarees")

	resp, body := s.do(http.MethodPost, "/collections", map[string]string{"name": "Sarees"}, s.token)
	s.Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("Collection name already exists", s.errorMessage(body))
	s.Len(s.listCollectionIDs(), 1)

	s.createSubcollection(sarees.ID, "Silk")
	resp, _ = s.do(http.MethodPost, fmt.Sprintf("/collections/%d/subcollections", sarees.ID), map[string]string{"name": "Silk"}, s.token)
	s.Equal(http.StatusConflict, resp.StatusCode)

	resp, body = s.do(http.MethodGet, fmt.Sprintf("/collections/%d/subcollections", sarees.ID), nil, "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var subs []dto.SubcollectionResponse
	s.decode(body, &subs)
	s.Len(subs, 1)
}

func (s *IntegrationTestSuite) Test_PartialUpdate() {
	sarees := s.createCollection("Sarees")
	s.createCollection("Kurtis")

	resp, body := s.do(http.MethodPut, fmt.Sprintf("/collections/%d", sarees.ID), map[string]string{"description": "Traditional"}, s.token)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))
	var updated dto.CollectionResponse
	s.decode(body, &updated)
	s.Equal("Sarees", updated.Name)
	s.Equal("Traditional", *updated.Description)

	resp, _ = s.do(http.MethodPut, fmt.Sprintf("/collections/%d", sarees.ID), map[string]string{"name": "Kurtis", "description": "Overwritten"}, s.token)
	s.Equal(http.StatusConflict, resp.StatusCode)

	resp, body = s.do(http.MethodGet, fmt.Sprintf("/collections/%d", sarees.ID), nil, "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var got dto.CollectionResponse
	s.decode(body, &got)
	s.Equal("Sarees", got.Name)
	s.Equal("Traditional", *got.Description)
}

func (s *IntegrationTestSuite) Test_CascadeDelete() {
	sarees := s.createCollection("Sarees")
	silk := s.createSubcollection(sarees.ID, "Silk")
	product := s.createProduct(silk.ID, "Banarasi", &imagePart{ContentType: "image/png", Data: []byte("png-bytes")})

	resp, body := s.do(http.MethodDelete, fmt.Sprintf("/collections/%d", sarees.ID), nil, s.token)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))

	for _, path := range []string{
		fmt.Sprintf("/collections/%d", sarees.ID),
		fmt.Sprintf("/collections/%d/subcollections", sarees.ID),
		fmt.Sprintf("/products/subcollection/%d", silk.ID),
		fmt.Sprintf("/products/%d", product.ID),
		fmt.Sprintf("/products/%d/image", product.ID),
	} {
		resp, _ := s.do(http.MethodGet, path, nil, "")
		s.Equal(http.StatusNotFound, resp.StatusCode, path)
	}

	resp, _ = s.do(http.MethodDelete, fmt.Sprintf("/collections/%d", sarees.ID), nil, s.token)
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *IntegrationTestSuite) Test_SubcollectionRoutesAreScoped() {
	sarees := s.createCollection("Sarees")
	kurtis := s.createCollection("Kurtis")
	silk := s.createSubcollection(sarees.ID, "Silk")
	cotton := s.createSubcollection(sarees.ID, "Cotton")

	resp, _ := s.do(http.MethodPut, fmt.Sprintf("/collections/%d/subcollections/%d", kurtis.ID, silk.ID), map[string]string{"name": "Stolen"}, s.token)
	s.Equal(http.StatusNotFound, resp.StatusCode)

	resp, _ = s.do(http.MethodDelete, fmt.Sprintf("/collections/%d/subcollections/%d", kurtis.ID, silk.ID), nil, s.token)
	s.Equal(http.StatusNotFound, resp.StatusCode)

	resp, body := s.do(http.MethodPut, fmt.Sprintf("/collections/%d/subcollections/reorder", sarees.ID), dto.ReorderRequest{OrderedIDs: []int64{cotton.ID, silk.ID}}, s.token)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))

	resp, body = s.do(http.MethodGet, fmt.Sprintf("/collections/%d/subcollections", sarees.ID), nil, "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var subs []dto.SubcollectionResponse
	s.decode(body, &subs)
	s.Require().Len(subs, 2)
	s.Equal(cotton.ID, subs[0].ID)
	s.Equal(1, subs[0].DisplayOrder)
	s.Equal(silk.ID, subs[1].ID)
	s.Equal(2, subs[1].DisplayOrder)

	resp, body = s.do(http.MethodPut, fmt.Sprintf("/collections/%d/subcollections/%d", sarees.ID, silk.ID), map[string]string{"description": "Pure silk"}, s.token)
	s.Require().Equal(http.StatusOK, resp.StatusCode, string(body))
	var updated dto.SubcollectionResponse
	s.decode(body, &updated)
	s.Equal("Silk", updated.Name)
	s.Equal("Pure silk", *updated.Description)

	resp, _ = s.do(http.MethodDelete, fmt.Sprintf("/collections/%d/subcollections/%d", sarees.ID, silk.ID), nil, s.token)
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *IntegrationTestSuite) Test_MalformedIDs() {
	for _, path := range []string{"/collections/abc", "/collections/0/subcollections", "/products/-1", "/products/subcollection/x"} {
		resp, body := s.do(http.MethodGet, path, nil, "")
		s.Equal(http.StatusBadRequest, resp.StatusCode, path)
		s.NotEmpty(s.errorMessage(body))
	}
}
