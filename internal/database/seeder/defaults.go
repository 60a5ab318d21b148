package seeder

func Defaults() []Seeder {
	return []Seeder{
		CourseCatalogSeeder{Offerings: DefaultCatalog()},
	}
}
