package steps

type columnSet struct {
	List    string           `json:"list"`
	Columns []map[string]any `json:"columns"`
	Visible []map[string]any `json:"visible"`
	Sorted  []map[string]any `json:"sorted"`
}

func (fc *FeatureContext) columnSet() columnSet {
	var set columnSet
	fc.decodeBody(&set)
	return set
}

func (fc *FeatureContext) iGetTheColumns(list string) error {
	fc.record(fc.apiDriver.GetColumns(list))
	return nil
}

func (fc *FeatureContext) theColumnsShouldBe(ids string) error {
	fc.require.Equal(splitNames(ids), fieldOf(fc.columnSet().Columns, "id"))
	return nil
}

func (fc *FeatureContext) iToggleTheColumnOf(columnID, list string) error {
	fc.record(fc.apiDriver.ToggleColumn(list, columnID))
	return nil
}

func (fc *FeatureContext) theVisibleColumnsShouldNotInclude(columnID string) error {
	set := fc.columnSet()
	fc.require.NotContains(fieldOf(set.Visible, "id"), columnID)
	fc.require.Contains(fieldOf(set.Columns, "id"), columnID, "hidden columns stay configured")
	return nil
}

func (fc *FeatureContext) iRemoveTheColumnOf(columnID, list string) error {
	fc.record(fc.apiDriver.RemoveColumn(list, columnID))
	return nil
}

func (fc *FeatureContext) iSortTheListBy(list, columnID, direction string) error {
	fc.record(fc.apiDriver.SortColumn(list, columnID, direction))
	fc.require.Equal(200, fc.response.StatusCode, string(fc.responseBody))
	return nil
}

func (fc *FeatureContext) theSortedColumnsShouldBe(ids string) error {
	fc.require.Equal(splitNames(ids), fieldOf(fc.columnSet().Sorted, "id"))
	return nil
}

func (fc *FeatureContext) iResetTheColumns(list string) error {
	fc.record(fc.apiDriver.ResetColumns(list))
	return nil
}

func (fc *FeatureContext) noColumnShouldBeSorted() error {
	fc.require.Empty(fc.columnSet().Sorted)
	return nil
}
