package csaf

// BranchCategory is the category of a product tree branch.
type BranchCategory string

const (
	BranchCategoryArchitecture        BranchCategory = "architecture"
	BranchCategoryHostName            BranchCategory = "host_name"
	BranchCategoryLanguage            BranchCategory = "language"
	BranchCategoryLegacy              BranchCategory = "legacy"
	BranchCategoryPatchLevel          BranchCategory = "patch_level"
	BranchCategoryProductFamily       BranchCategory = "product_family"
	BranchCategoryProductName         BranchCategory = "product_name"
	BranchCategoryProductVersion      BranchCategory = "product_version"
	BranchCategoryProductVersionRange BranchCategory = "product_version_range"
	BranchCategoryServicePack         BranchCategory = "service_pack"
	BranchCategorySpecification       BranchCategory = "specification"
	BranchCategoryVendor              BranchCategory = "vendor"
)

var knownBranchCategory = knownSet(
	string(BranchCategoryArchitecture),
	string(BranchCategoryHostName),
	string(BranchCategoryLanguage),
	string(BranchCategoryLegacy),
	string(BranchCategoryPatchLevel),
	string(BranchCategoryProductFamily),
	string(BranchCategoryProductName),
	string(BranchCategoryProductVersion),
	string(BranchCategoryProductVersionRange),
	string(BranchCategoryServicePack),
	string(BranchCategorySpecification),
	string(BranchCategoryVendor))

// Branch is one node of the product tree. A branch either subdivides
// further via Branches or terminates in a Product. The nesting is a strict
// tree owned by the document, recursion is bounded only by input size.
type Branch struct {
	Branches []Branch         `json:"branches,omitempty"`
	Category BranchCategory   `json:"category"` // required
	Name     string           `json:"name"`     // required
	Product  *FullProductName `json:"product,omitempty"`
}

// FindProductByID walks the branch and its children and returns the first
// product with the given ID, or nil.
func (branch *Branch) FindProductByID(productID ProductID) *FullProductName {
	if branch.Product != nil && branch.Product.ProductID == productID {
		return branch.Product
	}
	for i := range branch.Branches {
		if p := branch.Branches[i].FindProductByID(productID); p != nil {
			return p
		}
	}
	return nil
}

// RelationshipCategory is the category of a product relationship.
type RelationshipCategory string

const (
	RelationshipCategoryDefaultComponentOf  RelationshipCategory = "default_component_of"
	RelationshipCategoryExternalComponentOf RelationshipCategory = "external_component_of"
	RelationshipCategoryInstalledOn         RelationshipCategory = "installed_on"
	RelationshipCategoryInstalledWith       RelationshipCategory = "installed_with"
	RelationshipCategoryOptionalComponentOf RelationshipCategory = "optional_component_of"
)

var knownRelationshipCategory = knownSet(
	string(RelationshipCategoryDefaultComponentOf),
	string(RelationshipCategoryExternalComponentOf),
	string(RelationshipCategoryInstalledOn),
	string(RelationshipCategoryInstalledWith),
	string(RelationshipCategoryOptionalComponentOf))

// Relationship links two products defined elsewhere in the tree, forming a
// new product entry for the combination. The references are opaque IDs;
// whether they resolve within the tree is a validation concern outside this
// package.
type Relationship struct {
	Category                  RelationshipCategory `json:"category"`                     // required
	FullProductName           FullProductName      `json:"full_product_name"`            // required
	ProductReference          ProductID            `json:"product_reference"`            // required
	RelatesToProductReference ProductID            `json:"relates_to_product_reference"` // required
}

// ProductGroup names a set of products that belong together.
type ProductGroup struct {
	GroupID    ProductGroupID `json:"group_id"`    // required
	ProductIDs Products       `json:"product_ids"` // required, two or more
	Summary    *string        `json:"summary,omitempty"`
}

// ProductTree holds the products the document refers to.
type ProductTree struct {
	Branches         []Branch          `json:"branches,omitempty"`
	FullProductNames []FullProductName `json:"full_product_names,omitempty"`
	ProductGroups    []ProductGroup    `json:"product_groups,omitempty"`
	Relationships    []Relationship    `json:"relationships,omitempty"`
}

// FindProductByID returns the first product with the given ID from the
// tree's branches or flat name list, or nil.
func (tree *ProductTree) FindProductByID(productID ProductID) *FullProductName {
	for i := range tree.Branches {
		if p := tree.Branches[i].FindProductByID(productID); p != nil {
			return p
		}
	}
	for i := range tree.FullProductNames {
		if tree.FullProductNames[i].ProductID == productID {
			return &tree.FullProductNames[i]
		}
	}
	return nil
}

// FindRelationship returns the relationship whose combined product carries
// the given ID and category, or nil.
func (tree *ProductTree) FindRelationship(productID ProductID, category RelationshipCategory) *Relationship {
	for i := range tree.Relationships {
		r := &tree.Relationships[i]
		if r.Category == category && r.FullProductName.ProductID == productID {
			return r
		}
	}
	return nil
}
