package remote

import "time"

const OrderRelevance = "relevance"

// NoteFilter selects the notes a metadata search matches.
type NoteFilter struct {
	Words        string   `json:"words,omitempty"`
	Order        string   `json:"order"`
	NotebookGUID string   `json:"notebook_guid,omitempty"`
	TagGUIDs     []string `json:"tag_guids,omitempty"`
}

// ResultSpec names the fields the server fills in for each NoteSummary.
type ResultSpec struct {
	IncludeTitle      bool `json:"include_title"`
	IncludeCreated    bool `json:"include_created"`
	IncludeUpdated    bool `json:"include_updated"`
	IncludeNotebook   bool `json:"include_notebook_guid"`
	IncludeTags       bool `json:"include_tag_guids"`
	IncludeAttributes bool `json:"include_attributes"`
}

// FullSpec requests every summary field.
func FullSpec() ResultSpec {
	return ResultSpec{
		IncludeTitle:      true,
		IncludeCreated:    true,
		IncludeUpdated:    true,
		IncludeNotebook:   true,
		IncludeTags:       true,
		IncludeAttributes: true,
	}
}

type Resource struct {
	GUID     string `json:"guid"`
	Mime     string `json:"mime"`
	Size     int64  `json:"size"`
	Filename string `json:"filename,omitempty"`
}

type NoteSummary struct {
	GUID         string     `json:"guid"`
	Title        string     `json:"title"`
	Created      time.Time  `json:"created"`
	Updated      time.Time  `json:"updated"`
	NotebookGUID string     `json:"notebook_guid,omitempty"`
	TagGUIDs     []string   `json:"tag_guids,omitempty"`
	Resources    []Resource `json:"resources,omitempty"`
}

// NotesPage is one page of a metadata search. TotalNotes counts every match
// of the filter, independent of offset and limit.
type NotesPage struct {
	StartIndex int           `json:"start_index"`
	TotalNotes int           `json:"total_notes"`
	Notes      []NoteSummary `json:"notes"`
}

type Note struct {
	NoteSummary
	Content string `json:"content,omitempty"`
}

type NewNote struct {
	Title        string   `json:"title"                   validate:"required,max=255"`
	Content      string   `json:"content"`
	NotebookGUID string   `json:"notebook_guid,omitempty"`
	TagGUIDs     []string `json:"tag_guids,omitempty"     validate:"dive,required"`
	TagNames     []string `json:"tag_names,omitempty"     validate:"dive,required,max=100"`
}

type Tag struct {
	GUID       string `json:"guid"`
	Name       string `json:"name"`
	ParentGUID string `json:"parent_guid,omitempty"`
}

type NewTag struct {
	Name       string `json:"name"                  validate:"required,max=100"`
	ParentGUID string `json:"parent_guid,omitempty"`
}

type Notebook struct {
	GUID    string    `json:"guid"`
	Name    string    `json:"name"`
	Stack   string    `json:"stack,omitempty"`
	Default bool      `json:"default"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

type NewNotebook struct {
	Name  string `json:"name"            validate:"required,max=100"`
	Stack string `json:"stack,omitempty" validate:"max=100"`
}

// NoteCounts maps tag and notebook guids to the number of notes in each.
type NoteCounts struct {
	ByTag      map[string]int `json:"tag_counts"`
	ByNotebook map[string]int `json:"notebook_counts"`
}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type searchRequest struct {
	Filter     NoteFilter `json:"filter"`
	Offset     int        `json:"offset"`
	Limit      int        `json:"limit"`
	ResultSpec ResultSpec `json:"result_spec"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
