package workouts

// Catalog indexes exercises by id.
type Catalog map[string]Exercise

func NewCatalog(exercises []Exercise) Catalog {
	c := make(Catalog, len(exercises))
	for _, ex := range exercises {
		c[ex.ID] = ex
	}
	return c
}

func (c Catalog) Get(exerciseID string) (Exercise, bool) {
	ex, ok := c[exerciseID]
	return ex, ok
}

// Name returns the exercise display name, or its id when the exercise is unknown.
func (c Catalog) Name(exerciseID string) string {
	if ex, ok := c[exerciseID]; ok && ex.Name != "" {
		return ex.Name
	}
	return exerciseID
}

// UnknownRefs counts sets referencing exercises missing from the catalog.
func (c Catalog) UnknownRefs(list []Workout) int {
	count := 0
	for _, w := range list {
		for _, s := range w.Sets {
			if _, ok := c[s.ExerciseID]; !ok {
				count++
			}
		}
	}
	return count
}
