package category

import "context"

// StubCategoryRepo is an in-memory CategoryRepo for tests.
type StubCategoryRepo struct {
	nextId int
	data   map[int]Category
	// InUse marks category ids whose delete should be refused.
	InUse map[int]bool
}

func NewStubCategoryRepo() *StubCategoryRepo {
	return &StubCategoryRepo{
		data:  map[int]Category{},
		InUse: map[int]bool{},
	}
}

func (s *StubCategoryRepo) Store(ctx context.Context, category Category) (int, error) {
	s.nextId++
	category.ID = s.nextId
	s.data[category.ID] = category
	return category.ID, nil
}

func (s *StubCategoryRepo) GetAll(ctx context.Context, userId int) ([]Category, error) {
	categories := make([]Category, 0, len(s.data))
	// iterate in id order to keep output deterministic like the SQL implementation
	for id := 1; id <= s.nextId; id++ {
		if category, ok := s.data[id]; ok && category.UserID == userId {
			categories = append(categories, category)
		}
	}
	return categories, nil
}

func (s *StubCategoryRepo) GetById(ctx context.Context, categoryId int) (Category, error) {
	category, ok := s.data[categoryId]
	if !ok {
		return Category{}, ErrCategoryNotFound
	}
	return category, nil
}

func (s *StubCategoryRepo) Update(ctx context.Context, category Category) (bool, error) {
	if _, ok := s.data[category.ID]; !ok {
		return false, nil
	}
	s.data[category.ID] = category
	return true, nil
}

func (s *StubCategoryRepo) Delete(ctx context.Context, categoryId int) (bool, error) {
	if s.InUse[categoryId] {
		return false, ErrCategoryInUse
	}
	if _, ok := s.data[categoryId]; !ok {
		return false, nil
	}
	delete(s.data, categoryId)
	return true, nil
}
