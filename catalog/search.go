package catalog

import (
	"context"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"securecam-backend/models"
)

// searchLimit caps the hits returned per collection.
const searchLimit = 20

// SearchResults groups normalized hits per collection.
type SearchResults struct {
	Categories    []Match `json:"categories"`
	SubCategories []Match `json:"subcategories"`
	Products      []Match `json:"products"`
}

// SearchResponse is the full payload of GET /api/search.
type SearchResponse struct {
	Query     string        `json:"query"`
	Results   SearchResults `json:"results"`
	BestMatch *Match        `json:"bestMatch,omitempty"`
}

// Searcher runs the cross-collection text search. Each collection is queried
// independently with a case-insensitive containment match on name and slug;
// there is no shared index.
type Searcher struct {
	DB *mongo.Database
}

// Search returns ranked matches for a free-text query. An empty (or
// whitespace-only) query is a valid no-matches outcome and never touches the
// database; a database failure is an error the caller must report as such.
func (s *Searcher) Search(ctx context.Context, query string) (*SearchResponse, error) {
	resp := &SearchResponse{
		Query: query,
		Results: SearchResults{
			Categories:    []Match{},
			SubCategories: []Match{},
			Products:      []Match{},
		},
	}

	q := strings.TrimSpace(query)
	if q == "" {
		return resp, nil
	}

	re := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
	filter := bson.M{"$or": []bson.M{{"name": re}, {"slug": re}}}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(searchLimit)

	var cats []models.Category
	if err := s.findAll(ctx, CollCategories, filter, opts, &cats); err != nil {
		return nil, err
	}
	var subs []models.SubCategory
	if err := s.findAll(ctx, CollSubCategories, filter, opts, &subs); err != nil {
		return nil, err
	}
	var prods []models.Product
	if err := s.findAll(ctx, CollProducts, filter, opts, &prods); err != nil {
		return nil, err
	}

	// The URL of each hit is rebuilt from its ancestor slug chain, so pull
	// every referenced ancestor in one query per collection.
	catIDs := map[primitive.ObjectID]struct{}{}
	for _, sub := range subs {
		catIDs[sub.Category] = struct{}{}
	}
	for _, p := range prods {
		catIDs[p.Category] = struct{}{}
	}
	catByID, err := s.categoriesByID(ctx, catIDs)
	if err != nil {
		return nil, err
	}
	for _, c := range cats {
		catByID[c.ID] = c
	}

	subIDs := map[primitive.ObjectID]struct{}{}
	for _, p := range prods {
		subIDs[p.SubCategory] = struct{}{}
	}
	subByID, err := s.subcategoriesByID(ctx, subIDs)
	if err != nil {
		return nil, err
	}

	navIDs := map[primitive.ObjectID]struct{}{}
	for _, c := range catByID {
		navIDs[c.NavbarCategory] = struct{}{}
	}
	for _, p := range prods {
		navIDs[p.NavbarCategory] = struct{}{}
	}
	navByID, err := s.navbarsByID(ctx, navIDs)
	if err != nil {
		return nil, err
	}

	// Hits whose ancestor chain is broken (orphaned references) are skipped
	// rather than rendered with a dead URL.
	var catHits, subHits, prodHits []hit
	for _, c := range cats {
		nav, ok := navByID[c.NavbarCategory]
		if !ok {
			continue
		}
		catHits = append(catHits, hit{
			Match: Match{ID: c.ID.Hex(), Type: TypeCategory, Name: c.Name, URL: "/" + nav.Slug + "/" + c.Slug},
			Slug:  c.Slug,
		})
	}
	for _, sub := range subs {
		cat, ok := catByID[sub.Category]
		if !ok {
			continue
		}
		nav, ok := navByID[cat.NavbarCategory]
		if !ok {
			continue
		}
		subHits = append(subHits, hit{
			Match: Match{ID: sub.ID.Hex(), Type: TypeSubCategory, Name: sub.Name, URL: "/" + nav.Slug + "/" + cat.Slug + "/" + sub.Slug},
			Slug:  sub.Slug,
		})
	}
	for _, p := range prods {
		nav, navOK := navByID[p.NavbarCategory]
		cat, catOK := catByID[p.Category]
		sub, subOK := subByID[p.SubCategory]
		if !navOK || !catOK || !subOK {
			continue
		}
		prodHits = append(prodHits, hit{
			Match: Match{ID: p.ID.Hex(), Type: TypeProduct, Name: p.Name, URL: "/" + nav.Slug + "/" + cat.Slug + "/" + sub.Slug + "/" + p.Slug},
			Slug:  p.Slug,
		})
	}

	resp.Results.Categories = matchesOf(catHits)
	resp.Results.SubCategories = matchesOf(subHits)
	resp.Results.Products = matchesOf(prodHits)
	resp.BestMatch = pickBest(strings.ToLower(q), catHits, subHits, prodHits)
	return resp, nil
}

func (s *Searcher) findAll(ctx context.Context, coll string, filter bson.M, opts *options.FindOptions, out interface{}) error {
	cursor, err := s.DB.Collection(coll).Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}

func (s *Searcher) navbarsByID(ctx context.Context, ids map[primitive.ObjectID]struct{}) (map[primitive.ObjectID]models.NavbarCategory, error) {
	out := map[primitive.ObjectID]models.NavbarCategory{}
	if len(ids) == 0 {
		return out, nil
	}
	var items []models.NavbarCategory
	if err := s.findAll(ctx, CollNavbarCategories, bson.M{"_id": bson.M{"$in": idList(ids)}}, options.Find(), &items); err != nil {
		return nil, err
	}
	for _, item := range items {
		out[item.ID] = item
	}
	return out, nil
}

func (s *Searcher) categoriesByID(ctx context.Context, ids map[primitive.ObjectID]struct{}) (map[primitive.ObjectID]models.Category, error) {
	out := map[primitive.ObjectID]models.Category{}
	if len(ids) == 0 {
		return out, nil
	}
	var items []models.Category
	if err := s.findAll(ctx, CollCategories, bson.M{"_id": bson.M{"$in": idList(ids)}}, options.Find(), &items); err != nil {
		return nil, err
	}
	for _, item := range items {
		out[item.ID] = item
	}
	return out, nil
}

func (s *Searcher) subcategoriesByID(ctx context.Context, ids map[primitive.ObjectID]struct{}) (map[primitive.ObjectID]models.SubCategory, error) {
	out := map[primitive.ObjectID]models.SubCategory{}
	if len(ids) == 0 {
		return out, nil
	}
	var items []models.SubCategory
	if err := s.findAll(ctx, CollSubCategories, bson.M{"_id": bson.M{"$in": idList(ids)}}, options.Find(), &items); err != nil {
		return nil, err
	}
	for _, item := range items {
		out[item.ID] = item
	}
	return out, nil
}

func idList(ids map[primitive.ObjectID]struct{}) []primitive.ObjectID {
	list := make([]primitive.ObjectID, 0, len(ids))
	for id := range ids {
		list = append(list, id)
	}
	return list
}
