package property

import (
	"time"

	"github.com/google/uuid"
)

func ptr(n int32) *int32 { return &n }

func fallbackTime(daysAgo int) time.Time {
	return time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo)
}

// Fallback returns the static placeholder listings shown when the
// database cannot be reached. Content mirrors the demo data of the
// public site: Syrian cities, Arabic titles, prices in SYP.
func Fallback() []Property {
	return []Property{
		{
			Id:           uuid.MustParse("00000000-0000-0000-0000-000000000001"),
			Title:        "فيلا فاخرة مع حديقة",
			PropertyType: TypeVilla,
			Status:       StatusSale,
			Price:        1200000,
			Currency:     DefaultCurrency,
			Area:         350,
			Bedrooms:     ptr(5),
			Bathrooms:    ptr(3),
			Location:     "الشيخ ضاهر",
			City:         "اللاذقية",
			Images: []string{
				"/assets/properties/villa1.jpg",
				"/assets/properties/villa1-2.jpg",
				"/assets/properties/villa1-3.jpg",
			},
			CreatedAt: fallbackTime(1),
		},
		{
			Id:           uuid.MustParse("00000000-0000-0000-0000-000000000002"),
			Title:        "شقة حديثة وسط المدينة",
			PropertyType: TypeApartment,
			Status:       StatusRent,
			Price:        45000,
			Currency:     DefaultCurrency,
			Area:         120,
			Bedrooms:     ptr(2),
			Bathrooms:    ptr(1),
			Location:     "شارع بغداد",
			City:         "دمشق",
			Images:       []string{"/assets/properties/apartment1.jpg"},
			CreatedAt:    fallbackTime(2),
		},
		{
			Id:           uuid.MustParse("00000000-0000-0000-0000-000000000003"),
			Title:        "منزل تقليدي مرمم",
			PropertyType: TypeHouse,
			Status:       StatusSale,
			Price:        850000,
			Currency:     DefaultCurrency,
			Area:         220,
			Bedrooms:     ptr(4),
			Bathrooms:    ptr(2),
			Location:     "الجميلية",
			City:         "حلب",
			Images: []string{
				"/assets/properties/house1.jpg",
				"/assets/properties/house1-2.jpg",
			},
			CreatedAt: fallbackTime(3),
		},
		{
			Id:           uuid.MustParse("00000000-0000-0000-0000-000000000004"),
			Title:        "أرض استثمارية للبيع",
			PropertyType: TypeLand,
			Status:       StatusSale,
			Price:        1500000,
			Currency:     DefaultCurrency,
			Area:         1200,
			Bedrooms:     ptr(0),
			Bathrooms:    ptr(0),
			Location:     "طريق المطار",
			City:         "دمشق",
			Images:       []string{"/assets/properties/land1.jpg"},
			CreatedAt:    fallbackTime(4),
		},
		{
			Id:           uuid.MustParse("00000000-0000-0000-0000-000000000005"),
			Title:        "شقة مفروشة للإيجار",
			PropertyType: TypeApartment,
			Status:       StatusRent,
			Price:        55000,
			Currency:     DefaultCurrency,
			Area:         150,
			Bedrooms:     ptr(3),
			Bathrooms:    ptr(2),
			Location:     "شارع الثورة",
			City:         "دمشق",
			Images: []string{
				"/assets/properties/apartment2.jpg",
				"/assets/properties/apartment2-2.jpg",
			},
			CreatedAt: fallbackTime(5),
		},
		{
			Id:           uuid.MustParse("00000000-0000-0000-0000-000000000006"),
			Title:        "مكتب تجاري وسط المدينة",
			PropertyType: TypeCommercial,
			Status:       StatusRent,
			Price:        70000,
			Currency:     DefaultCurrency,
			Area:         80,
			Bedrooms:     ptr(0),
			Bathrooms:    ptr(1),
			Location:     "شارع الفردوس",
			City:         "حمص",
			Images:       []string{"/assets/properties/office1.jpg"},
			CreatedAt:    fallbackTime(6),
		},
		{
			Id:           uuid.MustParse("00000000-0000-0000-0000-000000000007"),
			Title:        "فيلا مع مسبح خاص",
			PropertyType: TypeVilla,
			Status:       StatusSale,
			Price:        1800000,
			Currency:     DefaultCurrency,
			Area:         450,
			Bedrooms:     ptr(6),
			Bathrooms:    ptr(4),
			Location:     "الزبداني",
			City:         "ريف دمشق",
			Images: []string{
				"/assets/properties/villa2.jpg",
				"/assets/properties/villa2-2.jpg",
			},
			CreatedAt: fallbackTime(7),
		},
		{
			Id:           uuid.MustParse("00000000-0000-0000-0000-000000000008"),
			Title:        "شقة قرب البحر",
			PropertyType: TypeApartment,
			Status:       StatusRent,
			Price:        60000,
			Currency:     DefaultCurrency,
			Area:         100,
			Bedrooms:     ptr(2),
			Bathrooms:    ptr(1),
			Location:     "الكورنيش",
			City:         "اللاذقية",
			Images:       []string{"/assets/properties/apartment3.jpg"},
			CreatedAt:    fallbackTime(8),
		},
		{
			Id:           uuid.MustParse("00000000-0000-0000-0000-000000000009"),
			Title:        "منزل ريفي مع إطلالة",
			PropertyType: TypeHouse,
			Status:       StatusSale,
			Price:        750000,
			Currency:     DefaultCurrency,
			Area:         180,
			Bedrooms:     ptr(3),
			Bathrooms:    ptr(2),
			Location:     "بلودان",
			City:         "ريف دمشق",
			Images:       []string{"/assets/properties/house2.jpg"},
			CreatedAt:    fallbackTime(9),
		},
		{
			Id:           uuid.MustParse("00000000-0000-0000-0000-000000000010"),
			Title:        "شقة فاخرة جديدة",
			PropertyType: TypeApartment,
			Status:       StatusSale,
			Price:        980000,
			Currency:     DefaultCurrency,
			Area:         220,
			Bedrooms:     ptr(4),
			Bathrooms:    ptr(3),
			Location:     "المزة",
			City:         "دمشق",
			Images: []string{
				"/assets/properties/apartment4.jpg",
				"/assets/properties/apartment4-2.jpg",
			},
			CreatedAt: fallbackTime(10),
		},
		{
			Id:           uuid.MustParse("00000000-0000-0000-0000-000000000011"),
			Title:        "فيلا مطلة على البحر",
			PropertyType: TypeVilla,
			Status:       StatusSale,
			Price:        2500000,
			Currency:     DefaultCurrency,
			Area:         400,
			Bedrooms:     ptr(5),
			Bathrooms:    ptr(4),
			Location:     "بانياس",
			City:         "طرطوس",
			Images: []string{
				"/assets/properties/villa3.jpg",
				"/assets/properties/villa3-2.jpg",
			},
			CreatedAt: fallbackTime(11),
		},
	}
}
