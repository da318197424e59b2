package postgres

import (
	"foodtruck/internal/domain/entity"
	"foodtruck/internal/infra/persistence/model"

	"gorm.io/datatypes"
)

func toTenantDomain(m *model.TenantModel) *entity.Tenant {
	if m == nil {
		return nil
	}

	return &entity.Tenant{
		ID:           m.ID,
		Subdomain:    m.Subdomain,
		BusinessName: m.BusinessName,
		Schedule:     toScheduleDomain(m.Schedule.Data()),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromTenantDomain(t *entity.Tenant) *model.TenantModel {
	if t == nil {
		return nil
	}

	return &model.TenantModel{
		ID:           t.ID,
		Subdomain:    t.Subdomain,
		BusinessName: t.BusinessName,
		Schedule:     datatypes.NewJSONType(fromScheduleDomain(t.Schedule)),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func toScheduleDomain(doc model.ScheduleDocument) entity.WeeklySchedule {
	days := make([]entity.ScheduleDay, 0, len(doc.Days))
	for _, d := range doc.Days {
		day := entity.ScheduleDay{
			Day:       entity.Weekday(d.Day),
			Location:  d.Location,
			Address:   d.Address,
			OpenTime:  d.OpenTime,
			CloseTime: d.CloseTime,
			Hours:     d.Hours,
			IsClosed:  d.IsClosed,
			Timezone:  d.Timezone,
		}
		if d.ClosureTimestamp != nil {
			ts := d.ClosureTimestamp.UTC()
			day.ClosureTimestamp = &ts
		}
		if d.Coordinates != nil {
			day.Coordinates = &entity.Coordinates{Lat: d.Coordinates.Lat, Lng: d.Coordinates.Lng}
		}
		days = append(days, day)
	}

	return entity.WeeklySchedule{
		Title:           doc.Title,
		Description:     doc.Description,
		PrimaryTimezone: doc.PrimaryTimezone,
		Days:            days,
	}
}

func fromScheduleDomain(s entity.WeeklySchedule) model.ScheduleDocument {
	days := make([]model.DayDocument, 0, len(s.Days))
	for _, d := range s.Days {
		day := model.DayDocument{
			Day:       d.Day.String(),
			Location:  d.Location,
			Address:   d.Address,
			OpenTime:  d.OpenTime,
			CloseTime: d.CloseTime,
			Hours:     d.Hours,
			IsClosed:  d.IsClosed,
			Timezone:  d.Timezone,
		}
		// A closure timestamp is meaningful only while the day is closed.
		if d.IsClosed && d.ClosureTimestamp != nil {
			ts := d.ClosureTimestamp.UTC()
			day.ClosureTimestamp = &ts
		}
		if d.Coordinates != nil {
			day.Coordinates = &model.Coordinates{Lat: d.Coordinates.Lat, Lng: d.Coordinates.Lng}
		}
		days = append(days, day)
	}

	return model.ScheduleDocument{
		Title:           s.Title,
		Description:     s.Description,
		PrimaryTimezone: s.PrimaryTimezone,
		Days:            days,
	}
}
