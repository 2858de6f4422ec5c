package lesson

// Index lists the lessons in menu order.
type Index struct {
	CatalogVersion string   `yaml:"catalogVersion"`
	Lessons        []string `yaml:"lessons"`
}

// Section is one numbered block of a lesson.
type Section struct {
	Title string   `yaml:"title"`
	Text  string   `yaml:"text,omitempty"`
	Code  string   `yaml:"code,omitempty"`
	Demo  string   `yaml:"demo,omitempty"`
	Notes []string `yaml:"notes,omitempty"`
}

// Lesson is the narrative content behind one menu topic.
type Lesson struct {
	ID       string    `yaml:"id"`
	Title    string    `yaml:"title"`
	Heading  string    `yaml:"heading"`
	Intro    string    `yaml:"intro,omitempty"`
	Sections []Section `yaml:"sections"`
	Takeaway []string  `yaml:"takeaway"`
}
