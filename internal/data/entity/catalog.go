package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultResources returns the initial departmental catalog loaded into an
// empty store on first boot.
func DefaultResources() []*Resource {
	now := time.Now()

	seed := []Resource{
		{Name: "AI & Robotics Lab", Type: ResourceTypeLab, Capacity: 20, Location: "Floor 3, Block A", Description: "Specialized lab for neural networks and hardware prototyping.", AvailabilityHours: "09:00 - 18:00", IconName: "Cpu"},
		{Name: "Cloud Computing Center", Type: ResourceTypeLab, Capacity: 30, Location: "Floor 4, Block B", Description: "Equipped with high-performance clusters and dev environments.", AvailabilityHours: "08:00 - 20:00", IconName: "Monitor"},
		{Name: "Main Auditorium", Type: ResourceTypeClassroom, Capacity: 250, Location: "Ground Floor", Description: "Large venue for departmental seminars and keynotes.", AvailabilityHours: "08:00 - 17:00", IconName: "Users"},
		{Name: "Board Meeting Room", Type: ResourceTypeMeetingRoom, Capacity: 12, Location: "Floor 5, Admin Block", Description: "Executive meeting room with video conferencing.", AvailabilityHours: "09:00 - 17:00", IconName: "Building"},
		{Name: "High-End GPU Workstation 01", Type: ResourceTypeEquipment, Capacity: 1, Location: "AI Lab", Description: "NVIDIA RTX 4090 station for deep learning training.", AvailabilityHours: "24/7", IconName: "HardDrive"},
		{Name: "Cyber Security Ops Room", Type: ResourceTypeLab, Capacity: 15, Location: "Floor 2, Block C", Description: "Secure environment for penetration testing and forensics.", AvailabilityHours: "09:00 - 18:00", IconName: "ShieldCheck"},
		{Name: "Smart Classroom 101", Type: ResourceTypeClassroom, Capacity: 45, Location: "Floor 1, Block A", Description: "Interactive displays and collaborative seating.", AvailabilityHours: "08:00 - 18:00", IconName: "BookOpen"},
		{Name: "Multimedia Design Studio", Type: ResourceTypeLab, Capacity: 20, Location: "Floor 3, Block B", Description: "Equipped with drawing tablets and creative software suites.", AvailabilityHours: "09:00 - 17:00", IconName: "Laptop"},
		{Name: "IoT Innovation Hub", Type: ResourceTypeLab, Capacity: 18, Location: "Floor 2, Block B", Description: "Workbench space for Arduino, Raspberry Pi, and sensors.", AvailabilityHours: "09:00 - 18:00", IconName: "Radio"},
		{Name: "Physics & Optics Lab", Type: ResourceTypeLab, Capacity: 25, Location: "Lower Ground", Description: "Darkroom facilities and laser testing benches.", AvailabilityHours: "08:00 - 16:00", IconName: "Lightbulb"},
		{Name: "3D Printer Delta 4", Type: ResourceTypeEquipment, Capacity: 1, Location: "Maker Space", Description: "High-precision filament printer for rapid prototyping.", AvailabilityHours: "09:00 - 18:00", IconName: "Printer"},
		{Name: "VR / AR Testing Pod", Type: ResourceTypeEquipment, Capacity: 2, Location: "Block A, Floor 3", Description: "HTC Vive and Meta Quest 3 development setups.", AvailabilityHours: "10:00 - 16:00", IconName: "Gamepad2"},
		{Name: "Seminar Hall 2", Type: ResourceTypeClassroom, Capacity: 60, Location: "Floor 1, Block C", Description: "Ideal for workshops and medium-sized presentations.", AvailabilityHours: "08:00 - 18:00", IconName: "Video"},
		{Name: "Microscopy Suite", Type: ResourceTypeLab, Capacity: 8, Location: "Basement Lab Area", Description: "Advanced electron and fluorescent microscopes.", AvailabilityHours: "09:00 - 15:00", IconName: "Microscope"},
		{Name: "Digital Electronics Lab", Type: ResourceTypeLab, Capacity: 35, Location: "Floor 2, Block A", Description: "Oscilloscopes, logic analyzers, and breadboarding stations.", AvailabilityHours: "08:00 - 17:00", IconName: "Beaker"},
	}

	resources := make([]*Resource, len(seed))
	for i := range seed {
		r := seed[i]
		r.ID = uuid.New()
		r.CreatedAt = now
		resources[i] = &r
	}
	return resources
}
