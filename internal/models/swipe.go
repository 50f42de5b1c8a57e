package models

import "time"

// Напрямки свайпу.
const (
	DirectionLeft  = "left"
	DirectionRight = "right"
)

// Swipe — спрямоване рішення одного учасника щодо іншого в межах події.
// Унікальний індекс на трійці (event_id, swiper_id, swiped_id) — природний ключ:
// повторна вставка тієї ж трійки відхиляється базою, а не попереднім читанням.
type Swipe struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   string    `gorm:"uniqueIndex:idx_swipes_triple" json:"event_id"`
	SwiperID  string    `gorm:"uniqueIndex:idx_swipes_triple" json:"swiper_id"`
	SwipedID  string    `gorm:"uniqueIndex:idx_swipes_triple" json:"swiped_id"`
	Direction string    `json:"direction"` // "left" або "right"
	CreatedAt time.Time `json:"created_at"`
}
