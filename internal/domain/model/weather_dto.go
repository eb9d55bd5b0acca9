package model

type CreateWeatherRecordDTO struct {
	Date     string `json:"date" validate:"required"`
	Location string `json:"location" validate:"required"`
	Notes    string `json:"notes"`
}

type CreateWeatherRecordResponse struct {
	ID string `json:"id"`
}
