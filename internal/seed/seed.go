// Package seed holds the demo dataset and populates empty collections with
// it on first run.
package seed

import (
	"context"
	"fmt"

	"github.com/buildcorp/buildpro/internal/domain"
	"github.com/buildcorp/buildpro/internal/store"
)

// Projects is the demo project portfolio.
func Projects() []domain.Project {
	return []domain.Project{
		{
			ID:          "p1",
			Name:        "City Centre Plaza Development",
			Code:        "CCP-2025",
			Description: "A mixed-use development featuring 40 stories of office space and a luxury retail podium.",
			Location:    "Downtown Metro",
			Type:        domain.TypeCommercial,
			Status:      domain.StatusActive,
			Health:      domain.HealthGood,
			Progress:    74,
			Budget:      25000000,
			Spent:       18500000,
			StartDate:   "2025-01-15",
			EndDate:     "2026-12-31",
			Manager:     "John Anderson",
			Image:       "https://images.unsplash.com/photo-1541888946425-d81bb19240f5?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			TeamSize:    24,
			Tasks:       domain.TaskStats{Total: 145, Completed: 98, Overdue: 2},
			Weather:     &domain.WeatherSnapshot{City: "New York", Temp: "72°", Condition: "Sunny"},
			AIAnalysis:  "Project is progressing ahead of schedule. Structural steel completion is imminent.",
		},
		{
			ID:          "p2",
			Name:        "Residential Complex - Phase 2",
			Code:        "RCP-002",
			Description: "Three tower residential complex with 400 units and shared amenities.",
			Location:    "Westside Heights",
			Type:        domain.TypeResidential,
			Status:      domain.StatusActive,
			Health:      domain.HealthAtRisk,
			Progress:    45,
			Budget:      18000000,
			Spent:       16500000,
			StartDate:   "2025-02-01",
			EndDate:     "2025-11-30",
			Manager:     "Sarah Mitchell",
			Image:       "https://images.unsplash.com/photo-1590069261209-f8e9b8642343?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			TeamSize:    18,
			Tasks:       domain.TaskStats{Total: 200, Completed: 80, Overdue: 12},
			Weather:     &domain.WeatherSnapshot{City: "Chicago", Temp: "65°", Condition: "Windy"},
		},
		{
			ID:          "p3",
			Name:        "Highway Bridge Repair",
			Code:        "HWY-95-REP",
			Description: "Structural reinforcement and resurfacing of the I-95 overpass.",
			Location:    "Interstate 95",
			Type:        domain.TypeInfrastructure,
			Status:      domain.StatusActive,
			Health:      domain.HealthGood,
			Progress:    12,
			Budget:      3200000,
			Spent:       400000,
			StartDate:   "2025-10-01",
			EndDate:     "2026-04-01",
			Manager:     "David Chen",
			Image:       "https://images.unsplash.com/photo-1545558014-8692077e9b5c?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			TeamSize:    45,
			Tasks:       domain.TaskStats{Total: 50, Completed: 5, Overdue: 0},
			Weather:     &domain.WeatherSnapshot{City: "Austin", Temp: "88°", Condition: "Clear"},
		},
		{
			ID:          "p4",
			Name:        "Eco-Friendly Office Park",
			Code:        "ECO-OP-01",
			Description: "Net-zero energy office park with solar integration and rainwater harvesting.",
			Location:    "North Hills",
			Type:        domain.TypeCommercial,
			Status:      domain.StatusPlanning,
			Health:      domain.HealthGood,
			Progress:    0,
			Budget:      5000000,
			Spent:       125000,
			StartDate:   "2025-12-01",
			EndDate:     "2027-06-01",
			Manager:     "John Anderson",
			Image:       "https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			TeamSize:    8,
			Tasks:       domain.TaskStats{Total: 0, Completed: 0, Overdue: 0},
			Weather:     &domain.WeatherSnapshot{City: "Seattle", Temp: "55°", Condition: "Rain"},
		},
	}
}

// Tasks is the demo task backlog.
func Tasks() []domain.Task {
	return []domain.Task{
		{ID: "t1", Title: "Safety inspection - Site A", ProjectID: "p1", Status: domain.TaskToDo, Priority: domain.PriorityHigh, AssigneeName: "Mike T.", AssigneeType: domain.AssigneeUser, DueDate: "2025-11-12"},
		{ID: "t2", Title: "Concrete pouring - Level 2", ProjectID: "p1", Status: domain.TaskToDo, Priority: domain.PriorityHigh, AssigneeName: "All Operatives", AssigneeType: domain.AssigneeRole, DueDate: "2025-11-20"},
		{ID: "t3", Title: "Complete foundation excavation", ProjectID: "p1", Status: domain.TaskInProgress, Priority: domain.PriorityHigh, AssigneeName: "David C.", AssigneeType: domain.AssigneeUser, DueDate: "2025-11-15"},
		{ID: "t4", Title: "Install steel framework", ProjectID: "p1", Status: domain.TaskDone, Priority: domain.PriorityHigh, AssigneeName: "David C.", AssigneeType: domain.AssigneeUser, DueDate: "2025-11-08"},
		{ID: "t5", Title: "Quality control inspection", ProjectID: "p3", Status: domain.TaskToDo, Priority: domain.PriorityHigh, AssigneeName: "Tom H.", AssigneeType: domain.AssigneeUser, DueDate: "2025-11-14"},
		{ID: "t6", Title: "Install electrical conduits", ProjectID: "p3", Status: domain.TaskInProgress, Priority: domain.PriorityMedium, AssigneeName: "James W.", AssigneeType: domain.AssigneeUser, DueDate: "2025-11-18"},
		{ID: "t7", Title: "Plumbing rough-in", ProjectID: "p2", Status: domain.TaskToDo, Priority: domain.PriorityMedium, AssigneeName: "Emma J.", AssigneeType: domain.AssigneeUser, DueDate: "2025-11-22"},
		{ID: "t8", Title: "HVAC system installation", ProjectID: "p2", Status: domain.TaskInProgress, Priority: domain.PriorityMedium, AssigneeName: "Emma J.", AssigneeType: domain.AssigneeUser, DueDate: "2025-11-25"},
		{ID: "t9", Title: "Prepare material estimates", ProjectID: "p2", Status: domain.TaskDone, Priority: domain.PriorityMedium, AssigneeName: "Sarah M.", AssigneeType: domain.AssigneeUser, DueDate: "2025-11-10"},
		{ID: "t10", Title: "Landscaping preparation", ProjectID: "p4", Status: domain.TaskInProgress, Priority: domain.PriorityLow, AssigneeName: "Sam B.", AssigneeType: domain.AssigneeUser, DueDate: "2025-11-30"},
	}
}

// Team is the demo workforce roster.
func Team() []domain.TeamMember {
	return []domain.TeamMember{
		{
			ID: "tm1", Name: "John Anderson", Initials: "JA", Role: "Principal Admin", Status: domain.MemberOnSite,
			ProjectID: "p1", ProjectName: "City Centre Plaza Development", Phone: "+44 7700 900001", Color: "bg-[#0f5c82]", Email: "john@buildcorp.com",
			Bio:      "20+ years in construction management. Specialized in large-scale commercial and infrastructure projects.",
			Location: "London, UK",
			Skills:   []string{"Strategic Planning", "Budget Management", "Stakeholder Relations", "Contract Negotiation"},
			Certifications: []domain.Certification{
				{Name: "PMP - Project Management Professional", Issuer: "PMI", IssueDate: "2020-05-15", ExpiryDate: "2026-05-15", Status: domain.CertValid},
				{Name: "PRINCE2 Practitioner", Issuer: "Axelos", IssueDate: "2022-01-10", ExpiryDate: "2025-01-10", Status: domain.CertExpiring},
			},
			PerformanceRating: 98, CompletedProjects: 42,
		},
		{
			ID: "tm2", Name: "Sarah Mitchell", Initials: "SM", Role: "Company Admin", Status: domain.MemberOffSite,
			ProjectID: "p2", ProjectName: "Residential Complex - Phase 2", Phone: "+44 7700 900002", Color: "bg-[#1f7d98]", Email: "sarah@buildcorp.com",
			Bio:      "Expert in residential development and sustainable building practices.",
			Location: "Manchester, UK",
			Skills:   []string{"Sustainability", "Team Leadership", "Resource Allocation", "Agile"},
			Certifications: []domain.Certification{
				{Name: "LEED Accredited Professional", Issuer: "USGBC", IssueDate: "2021-03-20", ExpiryDate: "2025-03-20", Status: domain.CertValid},
				{Name: "IOSH Managing Safely", Issuer: "IOSH", IssueDate: "2023-06-01", ExpiryDate: "2026-06-01", Status: domain.CertValid},
			},
			PerformanceRating: 95, CompletedProjects: 18,
		},
		{
			ID: "tm3", Name: "Mike Thompson", Initials: "MT", Role: "Project Manager", Status: domain.MemberOnSite,
			ProjectID: "p1", ProjectName: "City Centre Plaza Development", Phone: "+44 7700 900003", Color: "bg-[#1f7d98]", Email: "mike@buildcorp.com",
			Bio:      "Hands-on project manager with a background in civil engineering.",
			Location: "London, UK",
			Skills:   []string{"Civil Engineering", "Site Safety", "AutoCAD", "Scheduling"},
			Certifications: []domain.Certification{
				{Name: "OSHA 30-Hour Construction", Issuer: "OSHA", IssueDate: "2023-09-10", ExpiryDate: "2028-09-10", Status: domain.CertValid},
			},
			PerformanceRating: 88, CompletedProjects: 12,
		},
		{
			ID: "tm4", Name: "David Chen", Initials: "DC", Role: "Foreman", Status: domain.MemberOnSite,
			ProjectID: "p3", ProjectName: "Highway Bridge Repair", Phone: "+44 7700 900004", Color: "bg-[#0f5c82]", Email: "david@buildcorp.com",
			Bio:      "Seasoned foreman with specialized experience in concrete and steel structures.",
			Location: "Birmingham, UK",
			Skills:   []string{"Concrete", "Formwork", "Team Supervision", "Heavy Machinery"},
			Certifications: []domain.Certification{
				{Name: "First Aid at Work", Issuer: "Red Cross", IssueDate: "2024-01-15", ExpiryDate: "2027-01-15", Status: domain.CertValid},
				{Name: "SSSTS - Site Supervisor", Issuer: "CITB", IssueDate: "2022-11-05", ExpiryDate: "2027-11-05", Status: domain.CertValid},
			},
			PerformanceRating: 92, CompletedProjects: 25,
		},
		{
			ID: "tm5", Name: "James Wilson", Initials: "JW", Role: "Operative", Status: domain.MemberOnBreak,
			ProjectID: "p3", ProjectName: "Highway Bridge Repair", Phone: "+44 7700 900005", Color: "bg-[#1f7d98]", Email: "james@buildcorp.com",
			Bio:      "Skilled plant operator with 8 years of experience operating excavators and cranes.",
			Location: "Liverpool, UK",
			Skills:   []string{"Heavy Machinery", "Excavation", "Site Logistics"},
			Certifications: []domain.Certification{
				{Name: "CPCS Blue Card", Issuer: "NOCN", IssueDate: "2021-05-20", ExpiryDate: "2026-05-20", Status: domain.CertValid},
			},
			PerformanceRating: 85, CompletedProjects: 8,
		},
		{
			ID: "tm6", Name: "Robert Garcia", Initials: "RG", Role: "Operative", Status: domain.MemberOnSite,
			ProjectID: "p1", ProjectName: "City Centre Plaza Development", Phone: "+44 7700 900007", Color: "bg-[#1f7d98]", Email: "robert@buildcorp.com",
			Bio:      "Certified electrician with experience in both residential and commercial installations.",
			Location: "London, UK",
			Skills:   []string{"Electrical", "Wiring", "Testing & Inspection", "BMS Systems"},
			Certifications: []domain.Certification{
				{Name: "18th Edition Wiring Regulations", Issuer: "City & Guilds", IssueDate: "2019-07-10", ExpiryDate: "N/A", Status: domain.CertValid},
				{Name: "ECS Gold Card", Issuer: "JIB", IssueDate: "2022-02-14", ExpiryDate: "2025-02-14", Status: domain.CertExpiring},
			},
			PerformanceRating: 90, CompletedProjects: 15,
		},
		{
			ID: "tm7", Name: "Emma Johnson", Initials: "EJ", Role: "Project Manager", Status: domain.MemberOnSite,
			ProjectID: "p2", ProjectName: "Residential Complex - Phase 2", Phone: "+44 7700 900008", Color: "bg-[#1f7d98]", Email: "emma@buildcorp.com",
			Bio:      "Architect turned Project Manager, bringing design sensibility to construction execution.",
			Location: "Leeds, UK",
			Skills:   []string{"Architecture", "BIM", "Design Management", "Client Liaison"},
			Certifications: []domain.Certification{
				{Name: "RIBA Chartered Architect", Issuer: "RIBA", IssueDate: "2018-09-01", ExpiryDate: "N/A", Status: domain.CertValid},
			},
			PerformanceRating: 94, CompletedProjects: 10,
		},
	}
}

// Documents is the demo document register.
func Documents() []domain.ProjectDocument {
	return []domain.ProjectDocument{
		{ID: "d1", Name: "City Centre - Structural Plans", Type: domain.DocCAD, ProjectID: "p1", ProjectName: "City Centre Plaza", Size: "12.5 MB", Date: "2025-10-15", Status: domain.DocApproved},
		{ID: "d2", Name: "Building Permit - Phase 1", Type: domain.DocDocument, ProjectID: "p1", ProjectName: "City Centre Plaza", Size: "2.3 MB", Date: "2025-09-20", Status: domain.DocApproved},
		{ID: "d3", Name: "October Progress Photos", Type: domain.DocImage, ProjectID: "p1", ProjectName: "City Centre Plaza", Size: "45.8 MB", Date: "2025-11-05", Status: domain.DocApproved},
		{ID: "d4", Name: "Safety Compliance Report", Type: domain.DocDocument, ProjectID: "p2", ProjectName: "Residential Complex", Size: "5.2 MB", Date: "2025-11-01", Status: domain.DocApproved},
		{ID: "d5", Name: "Invoice #INV-2025-001", Type: domain.DocDocument, ProjectID: "p1", ProjectName: "City Centre Plaza", Size: "1.1 MB", Date: "2025-11-08", Status: domain.DocPending},
		{ID: "d6", Name: "Environmental Impact Assessment", Type: domain.DocDocument, ProjectID: "p3", ProjectName: "Highway Bridge", Size: "8.7 MB", Date: "2025-10-20", Status: domain.DocApproved},
		{ID: "d7", Name: "Architectural Drawings - Rev 3", Type: domain.DocCAD, ProjectID: "p2", ProjectName: "Residential Complex", Size: "18.4 MB", Date: "2025-10-25", Status: domain.DocApproved},
	}
}

// Clients is the demo client book.
func Clients() []domain.Client {
	return []domain.Client{
		{ID: "c1", Name: "Metro Development Group", ContactPerson: "Alice Walker", Role: "Director of Operations", Email: "alice@metrodev.com", Phone: "(555) 123-4567", Status: domain.ClientActive, Tier: domain.TierGold, ActiveProjects: 3, TotalValue: "£45.2M"},
		{ID: "c2", Name: "City Council", ContactPerson: "Robert Stone", Role: "Senior Planner", Email: "r.stone@city.gov", Phone: "(555) 987-6543", Status: domain.ClientActive, Tier: domain.TierGovernment, ActiveProjects: 1, TotalValue: "£8.5M"},
		{ID: "c3", Name: "Greenfield Estates", ContactPerson: "James Miller", Role: "CEO", Email: "jmiller@greenfield.com", Phone: "(555) 456-7890", Status: domain.ClientLead, Tier: domain.TierSilver, ActiveProjects: 0, TotalValue: "£0"},
		{ID: "c4", Name: "TechPark Innovations", ContactPerson: "Sarah Chen", Role: "Facilities Manager", Email: "schen@techpark.io", Phone: "(555) 222-3333", Status: domain.ClientActive, Tier: domain.TierPlatinum, ActiveProjects: 2, TotalValue: "£22.8M"},
	}
}

// Inventory is the demo stock list.
func Inventory() []domain.InventoryItem {
	return []domain.InventoryItem{
		{ID: "INV-001", Name: "Portland Cement Type I", Category: "Raw Materials", Stock: 450, Unit: "Bags", Threshold: 100, Status: domain.StockIn, Location: "Warehouse A", LastOrderDate: "2025-10-20", CostPerUnit: 12.50},
		{ID: "INV-002", Name: "Steel Rebar #4", Category: "Raw Materials", Stock: 1200, Unit: "Lengths", Threshold: 500, Status: domain.StockIn, Location: "Yard B", LastOrderDate: "2025-11-01", CostPerUnit: 8.75},
		{ID: "INV-003", Name: "Safety Helmets (White)", Category: "Safety Gear", Stock: 12, Unit: "Units", Threshold: 20, Status: domain.StockLow, Location: "Site Office", LastOrderDate: "2025-08-15", CostPerUnit: 15.00},
		{ID: "INV-004", Name: "Electrical Conduit 3/4\"", Category: "Consumables", Stock: 0, Unit: "Feet", Threshold: 200, Status: domain.StockOut, Location: "Warehouse A", LastOrderDate: "2025-09-10", CostPerUnit: 2.20},
		{ID: "INV-005", Name: "Pine Lumber 2x4", Category: "Raw Materials", Stock: 340, Unit: "Boards", Threshold: 150, Status: domain.StockIn, Location: "Yard B", LastOrderDate: "2025-11-05", CostPerUnit: 6.50},
	}
}

// Apply populates every empty collection with its demo records. Collections
// that already hold data are left alone, which makes seeding idempotent
// across restarts.
func Apply(ctx context.Context, st store.Store) error {
	collections := []struct {
		name    string
		records func() []record
	}{
		{store.Projects, func() []record { return toRecords(Projects(), func(p domain.Project) string { return p.ID }) }},
		{store.Tasks, func() []record { return toRecords(Tasks(), func(t domain.Task) string { return t.ID }) }},
		{store.Team, func() []record { return toRecords(Team(), func(m domain.TeamMember) string { return m.ID }) }},
		{store.Documents, func() []record { return toRecords(Documents(), func(d domain.ProjectDocument) string { return d.ID }) }},
		{store.Clients, func() []record { return toRecords(Clients(), func(c domain.Client) string { return c.ID }) }},
		{store.Inventory, func() []record { return toRecords(Inventory(), func(i domain.InventoryItem) string { return i.ID }) }},
	}

	for _, coll := range collections {
		count, err := st.Count(ctx, coll.name)
		if err != nil {
			return fmt.Errorf("checking collection %s: %w", coll.name, err)
		}
		if count > 0 {
			continue
		}
		for _, rec := range coll.records() {
			if err := st.Add(ctx, coll.name, rec.id, rec.value); err != nil {
				return fmt.Errorf("seeding collection %s: %w", coll.name, err)
			}
		}
	}

	return nil
}

type record struct {
	id    string
	value any
}

func toRecords[T any](items []T, id func(T) string) []record {
	records := make([]record, 0, len(items))
	for _, item := range items {
		records = append(records, record{id: id(item), value: item})
	}
	return records
}
