package model

// All lists every row type for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&ShopModel{},
		&ReviewModel{},
		&ShopLikeModel{},
		&ContactMessageModel{},
	}
}
