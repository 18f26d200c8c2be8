package services

import (
	"time"

	"droidsweep/backend/app/models"
	"droidsweep/backend/app/repo"
)

type DeviceService struct{ devices *repo.DeviceRepository }

func NewDeviceService(devices *repo.DeviceRepository) *DeviceService {
	return &DeviceService{devices: devices}
}

func (s *DeviceService) UpsertDevice(d *models.Device) error {
	d.LastSeen = time.Now()
	return s.devices.Upsert(d)
}

func (s *DeviceService) FindByUUID(uuid string) (*models.Device, error) {
	return s.devices.FindByUUID(uuid)
}

func (s *DeviceService) ListAll() ([]models.Device, error) {
	return s.devices.ListAll()
}
