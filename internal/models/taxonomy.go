package models

// Location taxonomy: provinces and their districts. Imported once from a
// reference dataset, read-mostly afterwards.
type Province struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	NameWithType string `json:"name_with_type"`
	Slug         string `json:"slug"`
	Type         string `json:"type"`
}

type District struct {
	ID           int    `json:"id"`
	ProvinceID   int    `json:"province_id"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	NameWithType string `json:"name_with_type"`
	Slug         string `json:"slug"`
	Type         string `json:"type"`
}

// Category is a job category; Field is a company business field.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Field struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Skill struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CreateNamedRequest struct {
	Name string `json:"name" binding:"required,max=255"`
	Slug string `json:"slug" binding:"required,max=255"`
}
