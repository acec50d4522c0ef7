package model

type Author struct {
	ID   int    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name string `json:"name"`
}

type Book struct {
	ID       int    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name     string `json:"name"`
	AuthorID int    `json:"authorId" gorm:"index"`
}

type NewAuthor struct {
	Name string `json:"name"`
}

type NewBook struct {
	Name     string `json:"name"`
	AuthorID int    `json:"authorId"`
}
