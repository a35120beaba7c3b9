package seeders

var categoryNames = []string{"Computers", "Servers", "Printers", "CNC Machines", "Vehicles", "HVAC"}

var teamNames = []string{"IT Support", "Electrical", "Mechanical", "Facilities"}

type workCenterSeed struct {
	Name, Code string
	Capacity   float64
}

var workCenters = []workCenterSeed{
	{Name: "Assembly Line 1", Code: "WC-ASM-1", Capacity: 2},
	{Name: "Paint Shop", Code: "WC-PNT-1", Capacity: 1},
}

type equipmentSeed struct {
	Name, Serial, Category, Team, Technician string
}

var equipment = []equipmentSeed{
	{Name: "Server X1", Serial: "SN-12345", Category: "Servers", Team: "IT Support", Technician: "Tech-001"},
	{Name: "Office Printer", Serial: "PRN-0001", Category: "Printers", Team: "IT Support", Technician: "Tech-002"},
	{Name: "CNC Mill 3-Axis", Serial: "CNC-3AX-77", Category: "CNC Machines", Team: "Mechanical", Technician: "Tech-010"},
}
