package card

type CreateCardRequest struct {
	Name   string  `form:"name" binding:"required"`
	Age    float64 `form:"age" binding:"omitempty,gte=0"`
	Height float64 `form:"height" binding:"omitempty,gte=0"`
	Weight float64 `form:"weight" binding:"omitempty,gte=0"`
	Chest  float64 `form:"chest" binding:"omitempty,gte=0"`
	Waist  float64 `form:"waist" binding:"omitempty,gte=0"`
	Hips   float64 `form:"hips" binding:"omitempty,gte=0"`
}

// UpdateCardRequest carries the only fields an owner may change after
// creation. Name, images and the creation timestamp are immutable.
type UpdateCardRequest struct {
	Weight *float64 `json:"weight,omitempty" binding:"omitempty,gte=0"`
	Chest  *float64 `json:"chest,omitempty" binding:"omitempty,gte=0"`
	Waist  *float64 `json:"waist,omitempty" binding:"omitempty,gte=0"`
	Hips   *float64 `json:"hips,omitempty" binding:"omitempty,gte=0"`
}
