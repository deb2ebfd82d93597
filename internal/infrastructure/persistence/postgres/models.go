package postgres

import "time"

// UserModel é o model GORM para usuários
type UserModel struct {
	ID        uint    `gorm:"primaryKey"`
	Email     *string `gorm:"type:varchar(255);index:idx_user_email"`
	Name      string  `gorm:"type:varchar(200)"`
	OAuthID   *string `gorm:"column:oauth_id;type:varchar(255);uniqueIndex:idx_user_oauth_id"` // NULL para contas provisionadas
	Role      string  `gorm:"type:varchar(20);not null;default:REGULAR;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string {
	return "app_user"
}

// ProductModel é o model GORM para produtos
type ProductModel struct {
	ID              uint    `gorm:"primaryKey"`
	Title           string  `gorm:"type:varchar(200);not null"`
	Description     string  `gorm:"type:varchar(2000)"`
	Category        string  `gorm:"type:varchar(20);not null;index"`
	Price           float64 `gorm:"not null;default:0"`
	ImageURL        string  `gorm:"column:image_url;type:varchar(1000)"`
	ImageURLDetails string  `gorm:"column:image_url_details;type:varchar(1000)"`
	Ingredients     string  `gorm:"type:varchar(2000)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (ProductModel) TableName() string {
	return "product"
}

// RecipeModel é o model GORM para receitas; apagar o produto apaga as receitas
type RecipeModel struct {
	ID         uint          `gorm:"primaryKey"`
	Title      string        `gorm:"type:varchar(200);not null"`
	Text       string        `gorm:"type:text"`
	PDFURL     string        `gorm:"column:pdf_url;type:varchar(1000)"`
	YouTubeURL string        `gorm:"column:youtube_url;type:varchar(1000)"`
	ProductID  *uint         `gorm:"index"`
	Product    *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (RecipeModel) TableName() string {
	return "recipe"
}

// ReviewModel é o model GORM para avaliações; sobrevivem à remoção do produto
type ReviewModel struct {
	ID        uint          `gorm:"primaryKey"`
	Stars     int           `gorm:"not null"`
	Text      string        `gorm:"type:text"`
	UserName  string        `gorm:"type:varchar(200)"`
	ProductID *uint         `gorm:"index"`
	Product   *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL"`
	CreatedAt time.Time
}

func (ReviewModel) TableName() string {
	return "review"
}

// FavoriteModel é o model GORM para favoritos; (user_id, recipe_id) é único
type FavoriteModel struct {
	ID        uint         `gorm:"primaryKey"`
	UserID    uint         `gorm:"not null;uniqueIndex:idx_favorite_user_recipe"`
	RecipeID  uint         `gorm:"not null;uniqueIndex:idx_favorite_user_recipe;index"`
	CreatedAt time.Time    `gorm:"not null;index"`
	User      *UserModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipe    *RecipeModel `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

func (FavoriteModel) TableName() string {
	return "favorite"
}

// AllModels lista os models na ordem de migração
func AllModels() []any {
	return []any{
		&UserModel{},
		&ProductModel{},
		&RecipeModel{},
		&ReviewModel{},
		&FavoriteModel{},
	}
}
