package handler

import "devicehub-backend/internal/model"

// AttrResponse is the wire shape shared by tags and sensors.
type AttrResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// DeviceResponse is the list shape. Description and image stay detail-only.
type DeviceResponse struct {
	ID          uint           `json:"id"`
	Title       string         `json:"title"`
	TimeMinutes int            `json:"time_minutes"`
	Value       float64        `json:"value"`
	Link        string         `json:"link"`
	Tags        []AttrResponse `json:"tags"`
	Sensors     []AttrResponse `json:"sensors"`
}

// DeviceDetailResponse adds the fields only the detail endpoints return.
type DeviceDetailResponse struct {
	DeviceResponse
	Description string  `json:"description"`
	Image       *string `json:"image"`
}

type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func tagResponses(tags []model.Tag) []AttrResponse {
	out := make([]AttrResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, AttrResponse{ID: t.ID, Name: t.Name})
	}
	return out
}

func sensorResponses(sensors []model.Sensor) []AttrResponse {
	out := make([]AttrResponse, 0, len(sensors))
	for _, s := range sensors {
		out = append(out, AttrResponse{ID: s.ID, Name: s.Name})
	}
	return out
}

func toDeviceResponse(d model.Device) DeviceResponse {
	return DeviceResponse{
		ID:          d.ID,
		Title:       d.Title,
		TimeMinutes: d.TimeMinutes,
		Value:       d.Value,
		Link:        d.Link,
		Tags:        tagResponses(d.Tags),
		Sensors:     sensorResponses(d.Sensors),
	}
}

func toDeviceResponses(devices []model.Device) []DeviceResponse {
	out := make([]DeviceResponse, 0, len(devices))
	for _, d := range devices {
		out = append(out, toDeviceResponse(d))
	}
	return out
}

// toDeviceDetailResponse expands the stored image path into an absolute URL.
func toDeviceDetailResponse(d model.Device, baseURL string) DeviceDetailResponse {
	resp := DeviceDetailResponse{
		DeviceResponse: toDeviceResponse(d),
		Description:    d.Description,
	}
	if d.Image != "" {
		url := baseURL + "/" + d.Image
		resp.Image = &url
	}
	return resp
}

func toUserResponse(u model.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Name: u.Name}
}
