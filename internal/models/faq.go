package models

import "sort"

// FAQQuestion is a question embedded inside an FAQ category.
type FAQQuestion struct {
	ID       string `bson:"id" json:"id"`
	Question string `bson:"question" json:"question"`
	Answer   string `bson:"answer" json:"answer"`
	Order    int    `bson:"order" json:"order"`
}

// FAQCategory groups FAQ questions. Questions live inside the category
// document and are re-saved with it on every nested change.
type FAQCategory struct {
	BaseModel `bson:",inline"`
	ID        string        `bson:"id" json:"id"`
	Name      string        `bson:"name" json:"name"`
	Order     int           `bson:"order" json:"order"`
	Questions []FAQQuestion `bson:"questions" json:"questions"`
}

// SortQuestions orders the embedded questions by their order field.
func (f *FAQCategory) SortQuestions() {
	sort.SliceStable(f.Questions, func(i, j int) bool {
		return f.Questions[i].Order < f.Questions[j].Order
	})
}

// NextQuestionOrder returns the order value for a newly added question:
// one past the current maximum, or 0 when the category is empty.
func (f *FAQCategory) NextQuestionOrder() int {
	if len(f.Questions) == 0 {
		return 0
	}
	max := f.Questions[0].Order
	for _, q := range f.Questions[1:] {
		if q.Order > max {
			max = q.Order
		}
	}
	return max + 1
}
