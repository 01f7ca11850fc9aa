package entity

type UserTimezone struct {
	UserID   string
	Timezone string
}
