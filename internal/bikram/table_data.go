package bikram

import "time"

// defaultRecords holds the 1 Baisakh anchor and month lengths for BS 2000-2090.
// Month lengths of 2085, 2086 and 2089 are adjusted so that every year ends
// the day before the next anchor.
var defaultRecords = []YearRecord{
	{2000, CivilDate{1943, time.April, 14}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 29, 31}},
	{2001, CivilDate{1944, time.April, 13}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2002, CivilDate{1945, time.April, 13}, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2003, CivilDate{1946, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2004, CivilDate{1947, time.April, 14}, [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2005, CivilDate{1948, time.April, 13}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2006, CivilDate{1949, time.April, 13}, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2007, CivilDate{1950, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2008, CivilDate{1951, time.April, 14}, [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 29, 31}},
	{2009, CivilDate{1952, time.April, 13}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2010, CivilDate{1953, time.April, 13}, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2011, CivilDate{1954, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2012, CivilDate{1955, time.April, 14}, [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}},
	{2013, CivilDate{1956, time.April, 13}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2014, CivilDate{1957, time.April, 13}, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2015, CivilDate{1958, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2016, CivilDate{1959, time.April, 14}, [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}},
	{2017, CivilDate{1960, time.April, 13}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2018, CivilDate{1961, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2019, CivilDate{1962, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2020, CivilDate{1963, time.April, 14}, [12]int{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2021, CivilDate{1964, time.April, 13}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2022, CivilDate{1965, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}},
	{2023, CivilDate{1966, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2024, CivilDate{1967, time.April, 14}, [12]int{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2025, CivilDate{1968, time.April, 13}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2026, CivilDate{1969, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2027, CivilDate{1970, time.April, 14}, [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2028, CivilDate{1971, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2029, CivilDate{1972, time.April, 13}, [12]int{31, 31, 32, 31, 32, 30, 30, 29, 30, 29, 30, 30}},
	{2030, CivilDate{1973, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2031, CivilDate{1974, time.April, 14}, [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2032, CivilDate{1975, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2033, CivilDate{1976, time.April, 13}, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2034, CivilDate{1977, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2035, CivilDate{1978, time.April, 14}, [12]int{30, 32, 31, 32, 31, 31, 29, 30, 30, 29, 29, 31}},
	{2036, CivilDate{1979, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2037, CivilDate{1980, time.April, 13}, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2038, CivilDate{1981, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2039, CivilDate{1982, time.April, 14}, [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}},
	{2040, CivilDate{1983, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2041, CivilDate{1984, time.April, 13}, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2042, CivilDate{1985, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2043, CivilDate{1986, time.April, 14}, [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}},
	{2044, CivilDate{1987, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2045, CivilDate{1988, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2046, CivilDate{1989, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2047, CivilDate{1990, time.April, 14}, [12]int{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2048, CivilDate{1991, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2049, CivilDate{1992, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}},
	{2050, CivilDate{1993, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2051, CivilDate{1994, time.April, 14}, [12]int{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2052, CivilDate{1995, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2053, CivilDate{1996, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}},
	{2054, CivilDate{1997, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2055, CivilDate{1998, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2056, CivilDate{1999, time.April, 14}, [12]int{31, 31, 32, 31, 32, 30, 30, 29, 30, 29, 30, 30}},
	{2057, CivilDate{2000, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2058, CivilDate{2001, time.April, 14}, [12]int{30, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2059, CivilDate{2002, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2060, CivilDate{2003, time.April, 14}, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2061, CivilDate{2004, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2062, CivilDate{2005, time.April, 14}, [12]int{30, 32, 31, 32, 31, 31, 29, 30, 29, 30, 29, 31}},
	{2063, CivilDate{2006, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2064, CivilDate{2007, time.April, 14}, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2065, CivilDate{2008, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2066, CivilDate{2009, time.April, 14}, [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 29, 31}},
	{2067, CivilDate{2010, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2068, CivilDate{2011, time.April, 14}, [12]int{31, 31, 32, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2069, CivilDate{2012, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2070, CivilDate{2013, time.April, 14}, [12]int{31, 31, 31, 32, 31, 31, 29, 30, 30, 29, 30, 30}},
	{2071, CivilDate{2014, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2072, CivilDate{2015, time.April, 14}, [12]int{31, 32, 31, 32, 31, 30, 30, 29, 30, 29, 30, 30}},
	{2073, CivilDate{2016, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 31}},
	{2074, CivilDate{2017, time.April, 14}, [12]int{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2075, CivilDate{2018, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2076, CivilDate{2019, time.April, 14}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}},
	{2077, CivilDate{2020, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2078, CivilDate{2021, time.April, 14}, [12]int{31, 31, 31, 32, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2079, CivilDate{2022, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2080, CivilDate{2023, time.April, 14}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 29, 30, 30}},
	{2081, CivilDate{2024, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 29, 31}},
	{2082, CivilDate{2025, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2083, CivilDate{2026, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 29, 30, 29, 30, 30}},
	{2084, CivilDate{2027, time.April, 14}, [12]int{31, 31, 32, 31, 31, 30, 30, 30, 29, 30, 30, 30}},
	{2085, CivilDate{2028, time.April, 13}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}},
	{2086, CivilDate{2029, time.April, 14}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 29}},
	{2087, CivilDate{2030, time.April, 14}, [12]int{31, 31, 32, 31, 31, 31, 30, 30, 29, 30, 30, 30}},
	{2088, CivilDate{2031, time.April, 15}, [12]int{30, 31, 32, 32, 30, 31, 30, 30, 29, 30, 30, 30}},
	{2089, CivilDate{2032, time.April, 14}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 29}},
	{2090, CivilDate{2033, time.April, 14}, [12]int{31, 32, 31, 32, 31, 30, 30, 30, 29, 30, 30, 30}},
}
