package config

// Feature describes one covariate of the Boston housing dataset.
type Feature struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// HousingFeatures lists the model covariates in the order the prediction
// form presents them. The price model sums its weights in this order.
var HousingFeatures = []Feature{
	{Code: "CRIM", Description: "Per capita crime rate by town"},
	{Code: "ZN", Description: "Proportion of residential land zoned for lots over 25,000 sq.ft."},
	{Code: "INDUS", Description: "Proportion of non-retail business acres per town"},
	{Code: "CHAS", Description: "Charles River dummy variable (1 if tract bounds river; 0 otherwise)"},
	{Code: "NOX", Description: "Nitric oxides concentration (parts per 10 million)"},
	{Code: "RM", Description: "Average number of rooms per dwelling"},
	{Code: "AGE", Description: "Proportion of owner-occupied units built prior to 1940"},
	{Code: "DIS", Description: "Weighted distances to five Boston employment centres"},
	{Code: "RAD", Description: "Index of accessibility to radial highways"},
	{Code: "TAX", Description: "Full-value property-tax rate per $10,000"},
	{Code: "PTRATIO", Description: "Pupil-teacher ratio by town"},
	{Code: "B", Description: "1000(Bk - 0.63)^2 where Bk is the proportion of Black people by town"},
	{Code: "LSTAT", Description: "% lower status of the population"},
}

// FeatureCodes returns the covariate codes in form order.
func FeatureCodes() []string {
	codes := make([]string, len(HousingFeatures))
	for i, f := range HousingFeatures {
		codes[i] = f.Code
	}
	return codes
}

// FeatureByCode returns the feature description for a code.
func FeatureByCode(code string) *Feature {
	for _, f := range HousingFeatures {
		if f.Code == code {
			return &f
		}
	}
	return nil
}
