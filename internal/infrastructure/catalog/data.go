package catalog

import "github.com/staybook/backend/internal/domain/entity"

var fixture = []entity.Hotel{
	{
		ID:          "h1",
		Name:        "Oceanfront Resort & Spa",
		Description: "Luxurious beachfront resort with stunning ocean views and premium amenities.",
		Location:    "Miami Beach, Florida",
		Rating:      4.8,
		Price:       299,
		Images: []string{
			"https://images.unsplash.com/photo-1571003123894-1f0594d2b5d9?q=80&w=2049&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1564501049412-61c2a3083791?q=80&w=2089&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1551918120-9739cb430c6d?q=80&w=1887&auto=format&fit=crop",
		},
		Amenities: []string{"Spa", "Pool", "Restaurant", "Gym", "Free WiFi", "Room Service"},
		Rooms: []entity.Room{
			{
				ID:          "r1",
				Name:        "Deluxe Ocean View",
				Description: "Spacious room with private balcony and panoramic ocean views.",
				Price:       299,
				Capacity:    2,
				Amenities:   []string{"King Bed", "Ocean View", "Mini Bar", "Free WiFi", "Room Service"},
				Images: []string{
					"https://images.unsplash.com/photo-1611892440504-42a792e24d32?q=80&w=2070&auto=format&fit=crop",
					"https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?q=80&w=2070&auto=format&fit=crop",
				},
			},
			{
				ID:          "r2",
				Name:        "Premium Suite",
				Description: "Luxury suite with separate living area and premium amenities.",
				Price:       499,
				Capacity:    4,
				Amenities:   []string{"King Bed", "Sofa Bed", "Ocean View", "Mini Bar", "Free WiFi", "Room Service", "Bathtub"},
				Images: []string{
					"https://images.unsplash.com/photo-1578683010236-d716f9a3f461?q=80&w=2070&auto=format&fit=crop",
					"https://images.unsplash.com/photo-1560448204-603b3fc33ddc?q=80&w=2070&auto=format&fit=crop",
				},
			},
		},
	},
	{
		ID:          "h2",
		Name:        "Mountain View Lodge",
		Description: "Cozy lodge nestled in the mountains with breathtaking views and outdoor activities.",
		Location:    "Aspen, Colorado",
		Rating:      4.6,
		Price:       249,
		Images: []string{
			"https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?q=80&w=2070&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1596394516093-501ba68a0ba6?q=80&w=2070&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1455587734955-081b22074882?q=80&w=1920&auto=format&fit=crop",
		},
		Amenities: []string{"Fireplace", "Restaurant", "Bar", "Hiking Trails", "Free WiFi", "Parking"},
		Rooms: []entity.Room{
			{
				ID:          "r3",
				Name:        "Mountain View Room",
				Description: "Comfortable room with stunning mountain views and rustic decor.",
				Price:       249,
				Capacity:    2,
				Amenities:   []string{"Queen Bed", "Mountain View", "Fireplace", "Free WiFi"},
				Images: []string{
					"https://images.unsplash.com/photo-1602891238926-6f12f4b48e7f?q=80&w=2070&auto=format&fit=crop",
					"https://images.unsplash.com/photo-1541123437800-1bb1317badc2?q=80&w=1770&auto=format&fit=crop",
				},
			},
			{
				ID:          "r4",
				Name:        "Luxury Cabin",
				Description: "Private cabin with full kitchen and panoramic mountain views.",
				Price:       399,
				Capacity:    4,
				Amenities:   []string{"King Bed", "Sofa Bed", "Full Kitchen", "Fireplace", "Private Deck"},
				Images: []string{
					"https://images.unsplash.com/photo-1590856029826-c7a73142bbf1?q=80&w=2073&auto=format&fit=crop",
					"https://images.unsplash.com/photo-1564501049759-0f19792ea5ef?q=80&w=1932&auto=format&fit=crop",
				},
			},
		},
	},
	{
		ID:          "h3",
		Name:        "Downtown Boutique Hotel",
		Description: "Stylish boutique hotel in the heart of downtown with modern amenities and design.",
		Location:    "New York City, New York",
		Rating:      4.5,
		Price:       279,
		Images: []string{
			"https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?q=80&w=2070&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1590490360182-c33d57733427?q=80&w=1974&auto=format&fit=crop",
			"https://images.unsplash.com/photo-1522771739844-6a9f6d5f14af?q=80&w=2071&auto=format&fit=crop",
		},
		Amenities: []string{"Rooftop Bar", "Restaurant", "Fitness Center", "Business Center", "Free WiFi"},
		Rooms: []entity.Room{
			{
				ID:          "r5",
				Name:        "City View King",
				Description: "Modern room with king bed and city views.",
				Price:       279,
				Capacity:    2,
				Amenities:   []string{"King Bed", "City View", "Smart TV", "Free WiFi", "Desk"},
				Images: []string{
					"https://images.unsplash.com/photo-1566665797739-1674de7a421a?q=80&w=1974&auto=format&fit=crop",
					"https://images.unsplash.com/photo-1582719471384-894fbb16e074?q=80&w=2070&auto=format&fit=crop",
				},
			},
			{
				ID:          "r6",
				Name:        "Executive Suite",
				Description: "Spacious suite with separate living area and luxury amenities.",
				Price:       429,
				Capacity:    2,
				Amenities:   []string{"King Bed", "Separate Living Area", "City View", "Mini Bar", "Free WiFi", "Bathtub"},
				Images: []string{
					"https://images.unsplash.com/photo-1609949279531-cf48d64bed89?q=80&w=1887&auto=format&fit=crop",
					"https://images.unsplash.com/photo-1631049552240-59c37f38802b?q=80&w=2070&auto=format&fit=crop",
				},
			},
		},
	},
}
