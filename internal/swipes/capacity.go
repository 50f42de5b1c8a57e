package swipes

// Unlocked вирішує, чи відкрита подія для свайпів.
// Оплачена подія відкрита завжди. Тестова — лише поки кількість joined-учасників
// не перевищує ліміт. Подія, що не є ні оплаченою, ні тестовою, закрита.
func Unlocked(isPaid, isTestMode bool, attendeeCap int, joinedCount int64) bool {
	if isPaid {
		return true
	}
	if isTestMode {
		return joinedCount <= int64(attendeeCap)
	}
	return false
}
